package api

import (
	"github.com/aldertane/vesta/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowGoals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	goals, err := handler.goalService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load goals")
	}

	return handler.render(c, "goals", fiber.Map{
		"Title": "Vesta | Goals",
		"Goals": goals,
	})
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := goalInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	goal, err := handler.goalService.CreateGoal(user.ID, input.Title, input.TargetAmount, input.TargetDate)
	switch err {
	case nil:
	case services.ErrGoalTitleRequired:
		return apiError(c, fiber.StatusBadRequest, "goal title is required")
	case services.ErrGoalAmountInvalid:
		return apiError(c, fiber.StatusBadRequest, "target amount must be a positive number")
	case services.ErrGoalDateInvalid:
		return apiError(c, fiber.StatusBadRequest, "target date must be YYYY-MM-DD")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to create goal")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":            goal.ID,
			"title":         goal.Title,
			"target_amount": goal.TargetAmount,
		})
	}
	return redirectOrJSON(c, "/app/goals")
}
