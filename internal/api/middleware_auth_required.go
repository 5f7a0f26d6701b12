package api

import (
	"net/url"
	"strings"
	"time"

	"github.com/aldertane/vesta/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AuthRequired authenticates the request and stores the user in the
// request context. Page requests bounce to the login screen, API
// requests get a plain 401. No redirect ever happens before the session
// check resolves; the request simply blocks on it.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// OnboardingCompleteRequired gates pages that need a finished onboarding.
// An incomplete user is sent into the wizard with the original path
// preserved, unless a one-shot skip cookie is present — that cookie is
// consumed on first use, so the following visit redirects again.
func (handler *Handler) OnboardingCompleteRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	status := handler.resolveOnboardingStatus(c, user.ID)
	if status == services.StatusComplete {
		return c.Next()
	}

	if handler.consumeSkipCookie(c) {
		return c.Next()
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "onboarding required"})
	}

	redirectTarget := "/onboarding"
	if original := sanitizeRedirectPath(c.Path(), ""); original != "" && original != "/onboarding" {
		redirectTarget = "/onboarding?redirect=" + url.QueryEscape(original)
	}
	return c.Redirect(redirectTarget, fiber.StatusSeeOther)
}

// resolveOnboardingStatus runs the records check at most once per request
// and treats a failed check as Incomplete. Failing closed sends the user
// toward onboarding rather than granting access on an unknown status.
func (handler *Handler) resolveOnboardingStatus(c *fiber.Ctx, userID uint) services.OnboardingStatus {
	if cached, ok := c.Locals(contextStatusKey).(services.OnboardingStatus); ok && cached != services.StatusUnknown {
		return cached
	}

	status, err := handler.onboardingSvc.Status(userID)
	if err != nil {
		status = services.StatusIncomplete
	}
	c.Locals(contextStatusKey, status)
	return status
}

func (handler *Handler) setSkipCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     skipCookieName,
		Value:    "1",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		// Session cookie: no Expires, the bypass never outlives the browser.
	})
}

func (handler *Handler) consumeSkipCookie(c *fiber.Ctx) bool {
	if strings.TrimSpace(c.Cookies(skipCookieName)) == "" {
		return false
	}
	handler.clearSkipCookie(c)
	return true
}

func (handler *Handler) clearSkipCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     skipCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
