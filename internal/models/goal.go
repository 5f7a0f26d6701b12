package models

import "time"

type Goal struct {
	ID           uint       `gorm:"primaryKey"`
	UserID       uint       `gorm:"not null;index"`
	Title        string     `gorm:"not null"`
	TargetAmount string     `gorm:"not null"`
	SavedAmount  string     `gorm:"not null;default:0"`
	TargetDate   *time.Time `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
