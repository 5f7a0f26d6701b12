package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if user := handler.optionalAuthenticatedUser(c); user != nil {
		c.Locals(contextUserKey, user)
		return c.Redirect(handler.postLoginRedirectPath(c, user), fiber.StatusSeeOther)
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title":      "Vesta | Sign In",
		"AuthError":  flash.AuthError,
		"LoginEmail": flash.LoginEmail,
	})
}

func (handler *Handler) ShowSignupPage(c *fiber.Ctx) error {
	if user := handler.optionalAuthenticatedUser(c); user != nil {
		c.Locals(contextUserKey, user)
		return c.Redirect(handler.postLoginRedirectPath(c, user), fiber.StatusSeeOther)
	}

	flash := handler.popFlashCookie(c)
	authError := flash.AuthError
	if authError == "" {
		authError = strings.TrimSpace(c.Query("error"))
	}
	registerEmail := flash.RegisterEmail
	if registerEmail == "" {
		registerEmail = strings.ToLower(strings.TrimSpace(c.Query("email")))
	}

	return handler.render(c, "signup", fiber.Map{
		"Title":         "Vesta | Create Account",
		"AuthError":     authError,
		"RegisterEmail": registerEmail,
	})
}
