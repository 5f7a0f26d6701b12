package api

import (
	"github.com/aldertane/vesta/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName  = "vesta_auth"
	flashCookieName = "vesta_flash"
	skipCookieName  = "vesta_onboarding_skip"

	contextUserKey   = "current_user"
	contextStatusKey = "onboarding_status"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
