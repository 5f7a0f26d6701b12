package api

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// respondAuthError keeps browser form posts on the auth pages: the error
// and the typed email come back through the flash cookie. JSON and HTMX
// clients get the plain error payload.
func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string) error {
	if strings.HasPrefix(c.Path(), "/api/auth/") && !acceptsJSON(c) && !isHTMX(c) {
		flash := FlashPayload{AuthError: message}
		switch c.Path() {
		case "/api/auth/register":
			email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
			flash.RegisterEmail = email
			handler.setFlashCookie(c, flash)
			redirectValues := url.Values{}
			redirectValues.Set("error", strings.TrimSpace(message))
			if email != "" {
				redirectValues.Set("email", email)
			}
			return c.Redirect("/signup?"+redirectValues.Encode(), fiber.StatusSeeOther)
		default:
			flash.LoginEmail = strings.ToLower(strings.TrimSpace(c.FormValue("email")))
			handler.setFlashCookie(c, flash)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
	}
	return apiError(c, status, message)
}

func (handler *Handler) respondSettingsError(c *fiber.Ctx, status int, message string) error {
	if (strings.HasPrefix(c.Path(), "/api/settings/") || strings.HasPrefix(c.Path(), "/app/settings")) && !acceptsJSON(c) && !isHTMX(c) {
		handler.setFlashCookie(c, FlashPayload{SettingsError: message})
		return c.Redirect("/app/settings", fiber.StatusSeeOther)
	}
	return apiError(c, status, message)
}
