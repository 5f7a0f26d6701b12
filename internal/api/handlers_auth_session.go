package api

import (
	"time"

	"github.com/aldertane/vesta/internal/models"
	"github.com/aldertane/vesta/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// User-facing auth error copy, surfaced verbatim.
const (
	authErrorInvalidInput       = "invalid input"
	authErrorInvalidEmail       = "invalid email"
	authErrorInvalidCredentials = "invalid credentials"
	authErrorAlreadyRegistered  = "email already exists"
	authErrorWeakPassword       = "weak password"
	authErrorPasswordMismatch   = "password mismatch"
	authErrorRateLimited        = "too many login attempts"
	// Registration signs users in without a confirmation step, so this
	// one is currently never produced.
	authErrorEmailUnconfirmed = "email not confirmed"
)

const (
	loginAttemptsLimit  = 10
	loginAttemptsWindow = 15 * time.Minute
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		if err == services.ErrAuthCredentialsInvalid && services.NormalizeAuthEmail(c.FormValue("email")) == "" {
			return handler.respondAuthError(c, fiber.StatusBadRequest, authErrorInvalidEmail)
		}
		return handler.respondAuthError(c, fiber.StatusBadRequest, authErrorInvalidInput)
	}
	if credentials.ConfirmPassword != "" && credentials.Password != credentials.ConfirmPassword {
		return handler.respondAuthError(c, fiber.StatusBadRequest, authErrorPasswordMismatch)
	}
	if err := services.ValidatePasswordStrength(credentials.Password); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, authErrorWeakPassword)
	}

	exists, err := handler.authService.RegistrationEmailExists(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return handler.respondAuthError(c, fiber.StatusConflict, authErrorAlreadyRegistered)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:        credentials.Email,
		PasswordHash: string(passwordHash),
		DisplayName:  credentials.DisplayName,
		Theme:        models.ThemeLight,
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return handler.respondAuthError(c, fiber.StatusConflict, authErrorAlreadyRegistered)
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	c.Locals(contextUserKey, &user)
	return redirectOrJSON(c, handler.postLoginRedirectPath(c, &user))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	limiterKey := clientThrottleKey(c)
	if handler.loginLimiter.blocked(limiterKey, now) {
		return handler.respondAuthError(c, fiber.StatusTooManyRequests, authErrorRateLimited)
	}

	credentials, err := parseCredentials(c)
	if err != nil {
		handler.loginLimiter.recordFailure(limiterKey, now)
		return handler.respondAuthError(c, fiber.StatusBadRequest, authErrorInvalidInput)
	}

	user, err := handler.authService.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		handler.loginLimiter.recordFailure(limiterKey, now)
		return handler.respondAuthError(c, fiber.StatusUnauthorized, authErrorInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		handler.loginLimiter.recordFailure(limiterKey, now)
		return handler.respondAuthError(c, fiber.StatusUnauthorized, authErrorInvalidCredentials)
	}

	handler.loginLimiter.forget(limiterKey)
	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	c.Locals(contextUserKey, &user)
	return redirectOrJSON(c, handler.postLoginRedirectPath(c, &user))
}

// Logout clears the auth cookie along with every piece of per-session
// derived state; the onboarding status is recomputed from scratch on the
// next sign-in.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	handler.clearSkipCookie(c)
	handler.clearFlashCookie(c)
	if isHTMX(c) {
		c.Set("HX-Redirect", "/login")
		return c.SendStatus(fiber.StatusOK)
	}
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
