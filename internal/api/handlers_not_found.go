package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") || acceptsJSON(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	user := handler.optionalAuthenticatedUser(c)
	if user != nil {
		c.Locals(contextUserKey, user)
	}

	primaryPath := "/login"
	primaryLabel := "Back to login"
	if user != nil {
		primaryPath = "/dashboard"
		primaryLabel = "Back to dashboard"
	}

	c.Status(fiber.StatusNotFound)
	return handler.render(c, "not_found", fiber.Map{
		"Title":        "Vesta | Page Not Found",
		"PrimaryPath":  primaryPath,
		"PrimaryLabel": primaryLabel,
	})
}
