package api

import (
	"github.com/aldertane/vesta/internal/models"
	"github.com/aldertane/vesta/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) postLoginRedirectPath(c *fiber.Ctx, user *models.User) string {
	if handler.resolveOnboardingStatus(c, user.ID) == services.StatusComplete {
		return "/dashboard"
	}
	return "/onboarding"
}
