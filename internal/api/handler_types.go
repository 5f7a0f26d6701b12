package api

import (
	"html/template"
	"time"

	"github.com/aldertane/vesta/internal/db"
	"github.com/aldertane/vesta/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	templates    map[string]*template.Template

	repositories     *db.Repositories
	authService      *services.AuthService
	onboardingSvc    *services.OnboardingService
	portfolioService *services.PortfolioService
	goalService      *services.GoalService
	settingsService  *services.SettingsService

	loginLimiter *loginThrottle
}

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type profileSettingsInput struct {
	DisplayName string `json:"display_name" form:"display_name"`
	Theme       string `json:"theme" form:"theme"`
}

type transactionInput struct {
	Kind   string `json:"kind" form:"kind"`
	Amount string `json:"amount" form:"amount"`
	Note   string `json:"note" form:"note"`
}

type goalInput struct {
	Title        string `json:"title" form:"title"`
	TargetAmount string `json:"target_amount" form:"target_amount"`
	TargetDate   string `json:"target_date" form:"target_date"`
}

type FlashPayload struct {
	AuthError       string `json:"auth_error,omitempty"`
	SettingsError   string `json:"settings_error,omitempty"`
	SettingsSuccess string `json:"settings_success,omitempty"`
	LoginEmail      string `json:"login_email,omitempty"`
	RegisterEmail   string `json:"register_email,omitempty"`
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)
