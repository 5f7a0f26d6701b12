package api

import (
	"github.com/gofiber/fiber/v2"
)

// ShowDashboard serves both /dashboard and the portfolio page; the two
// routes present the same portfolio summary.
func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	summary, err := handler.portfolioService.Summary(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load portfolio")
	}

	goals, err := handler.goalService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load goals")
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":     "Vesta | Dashboard",
		"Summary":   summary,
		"Goals":     goals,
		"SkipHint":  c.Query("skip") == "1",
		"GoalCount": len(goals),
	})
}
