package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/aldertane/vesta/internal/models"
)

const maxSettingsDisplayNameLength = 64

var (
	ErrSettingsDisplayNameTooLong = errors.New("settings display name too long")
	ErrSettingsThemeInvalid       = errors.New("settings theme invalid")
)

type SettingsUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateDisplayName(userID uint, displayName string) error
	UpdateTheme(userID uint, theme string) error
	UpdatePassword(userID uint, passwordHash string) error
	DeleteAccountAndRelatedData(userID uint) error
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

func (service *SettingsService) NormalizeDisplayName(raw string) (string, error) {
	displayName := strings.TrimSpace(raw)
	if utf8.RuneCountInString(displayName) > maxSettingsDisplayNameLength {
		return "", ErrSettingsDisplayNameTooLong
	}
	return displayName, nil
}

func (service *SettingsService) UpdateDisplayName(userID uint, displayName string) error {
	return service.users.UpdateDisplayName(userID, displayName)
}

func (service *SettingsService) UpdateTheme(userID uint, theme string) error {
	if !models.IsValidTheme(theme) {
		return ErrSettingsThemeInvalid
	}
	return service.users.UpdateTheme(userID, theme)
}

func (service *SettingsService) UpdatePassword(userID uint, passwordHash string) error {
	return service.users.UpdatePassword(userID, passwordHash)
}

func (service *SettingsService) DeleteAccount(userID uint) error {
	return service.users.DeleteAccountAndRelatedData(userID)
}
