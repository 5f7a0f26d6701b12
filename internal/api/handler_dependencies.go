package api

import (
	"github.com/aldertane/vesta/internal/db"
	"github.com/aldertane/vesta/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.onboardingSvc = services.NewOnboardingService(handler.repositories.Steps)
	handler.portfolioService = services.NewPortfolioService(handler.repositories.Holdings, handler.repositories.Transactions)
	handler.goalService = services.NewGoalService(handler.repositories.Goals)
	handler.settingsService = services.NewSettingsService(handler.repositories.Users)
	return handler
}
