package models

import "time"

type Holding struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Symbol    string `gorm:"not null"`
	Name      string `gorm:"not null"`
	Category  string `gorm:"not null"`
	Units     string `gorm:"not null;default:0"`
	UnitPrice string `gorm:"not null;default:0"`
	ChangePct string `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
