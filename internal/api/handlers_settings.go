package api

import (
	"strings"

	"github.com/aldertane/vesta/internal/models"
	"github.com/aldertane/vesta/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// settingsSectionFromPath maps the settings sub-routes onto their tab.
func settingsSectionFromPath(path string) string {
	switch path {
	case "/app/settings/users":
		return "users"
	case "/app/settings/timing":
		return "timing"
	case "/app/settings/payments":
		return "payments"
	case "/app/settings/contact":
		return "contact"
	default:
		return "profile"
	}
}

func (handler *Handler) ShowSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "settings", fiber.Map{
		"Title":           "Vesta | Settings",
		"Section":         settingsSectionFromPath(c.Path()),
		"DisplayName":     user.DisplayName,
		"Email":           user.Email,
		"SelectedTheme":   user.Theme,
		"Themes":          []string{models.ThemeLight, models.ThemeDark},
		"SettingsError":   flash.SettingsError,
		"SettingsSuccess": flash.SettingsSuccess,
	})
}

func (handler *Handler) UpdateProfileSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := profileSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondSettingsError(c, fiber.StatusBadRequest, "invalid input")
	}

	displayName, err := handler.settingsService.NormalizeDisplayName(input.DisplayName)
	if err != nil {
		return handler.respondSettingsError(c, fiber.StatusBadRequest, "display name is too long")
	}
	if err := handler.settingsService.UpdateDisplayName(user.ID, displayName); err != nil {
		return handler.respondSettingsError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	if theme := strings.TrimSpace(input.Theme); theme != "" {
		if err := handler.settingsService.UpdateTheme(user.ID, theme); err != nil {
			if err == services.ErrSettingsThemeInvalid {
				return handler.respondSettingsError(c, fiber.StatusBadRequest, "unknown theme")
			}
			return handler.respondSettingsError(c, fiber.StatusInternalServerError, "failed to update theme")
		}
	}

	if acceptsJSON(c) || isHTMX(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{SettingsSuccess: "Profile updated"})
	return c.Redirect("/app/settings", fiber.StatusSeeOther)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondSettingsError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return handler.respondSettingsError(c, fiber.StatusUnauthorized, "current password is incorrect")
	}
	if input.ConfirmPassword != "" && input.NewPassword != input.ConfirmPassword {
		return handler.respondSettingsError(c, fiber.StatusBadRequest, "passwords do not match")
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		return handler.respondSettingsError(c, fiber.StatusBadRequest, "new password is too weak")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return handler.respondSettingsError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	if err := handler.settingsService.UpdatePassword(user.ID, string(passwordHash)); err != nil {
		return handler.respondSettingsError(c, fiber.StatusInternalServerError, "failed to change password")
	}

	if acceptsJSON(c) || isHTMX(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{SettingsSuccess: "Password changed"})
	return c.Redirect("/app/settings", fiber.StatusSeeOther)
}

// DeleteAccount removes the user and everything keyed to them, then ends
// the session.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	if err := handler.settingsService.DeleteAccount(user.ID); err != nil {
		return handler.respondSettingsError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearAuthCookie(c)
	handler.clearSkipCookie(c)
	handler.clearFlashCookie(c)
	if acceptsJSON(c) || isHTMX(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/signup", fiber.StatusSeeOther)
}
