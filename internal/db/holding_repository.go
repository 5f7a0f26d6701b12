package db

import (
	"github.com/aldertane/vesta/internal/models"
	"gorm.io/gorm"
)

type HoldingRepository struct {
	database *gorm.DB
}

func NewHoldingRepository(database *gorm.DB) *HoldingRepository {
	return &HoldingRepository{database: database}
}

func (repo *HoldingRepository) ListByUser(userID uint) ([]models.Holding, error) {
	holdings := make([]models.Holding, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("symbol ASC").
		Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

func (repo *HoldingRepository) Create(holding *models.Holding) error {
	return repo.database.Create(holding).Error
}
