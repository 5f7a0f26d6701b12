package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/aldertane/vesta/internal/models"
)

type fakeSettingsUserRepository struct {
	theme   string
	deleted []uint
}

func (repo *fakeSettingsUserRepository) FindByID(userID uint) (models.User, error) {
	return models.User{ID: userID}, nil
}

func (repo *fakeSettingsUserRepository) UpdateDisplayName(userID uint, displayName string) error {
	return nil
}

func (repo *fakeSettingsUserRepository) UpdateTheme(userID uint, theme string) error {
	repo.theme = theme
	return nil
}

func (repo *fakeSettingsUserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return nil
}

func (repo *fakeSettingsUserRepository) DeleteAccountAndRelatedData(userID uint) error {
	repo.deleted = append(repo.deleted, userID)
	return nil
}

func TestNormalizeDisplayName(t *testing.T) {
	service := NewSettingsService(&fakeSettingsUserRepository{})

	name, err := service.NormalizeDisplayName("  Jordan  ")
	if err != nil {
		t.Fatalf("expected valid name, got %v", err)
	}
	if name != "Jordan" {
		t.Fatalf("expected trimmed name, got %q", name)
	}

	if _, err := service.NormalizeDisplayName(strings.Repeat("x", 65)); !errors.Is(err, ErrSettingsDisplayNameTooLong) {
		t.Fatalf("expected too-long error, got %v", err)
	}
	if _, err := service.NormalizeDisplayName(strings.Repeat("x", 64)); err != nil {
		t.Fatalf("expected 64 runes to pass, got %v", err)
	}
}

func TestUpdateThemeRejectsUnknownTheme(t *testing.T) {
	repo := &fakeSettingsUserRepository{}
	service := NewSettingsService(repo)

	if err := service.UpdateTheme(1, "sepia"); !errors.Is(err, ErrSettingsThemeInvalid) {
		t.Fatalf("expected theme error, got %v", err)
	}
	if err := service.UpdateTheme(1, models.ThemeDark); err != nil {
		t.Fatalf("expected dark theme to pass, got %v", err)
	}
	if repo.theme != models.ThemeDark {
		t.Fatalf("expected theme persisted, got %q", repo.theme)
	}
}

func TestDeleteAccountDelegatesToRepository(t *testing.T) {
	repo := &fakeSettingsUserRepository{}
	service := NewSettingsService(repo)

	if err := service.DeleteAccount(9); err != nil {
		t.Fatalf("delete account failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 9 {
		t.Fatalf("expected user 9 deleted, got %v", repo.deleted)
	}
}
