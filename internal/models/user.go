package models

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	DisplayName  string
	Theme        string    `gorm:"not null;default:light"`
	CreatedAt    time.Time `gorm:"not null"`
}

func IsValidTheme(value string) bool {
	return value == ThemeLight || value == ThemeDark
}
