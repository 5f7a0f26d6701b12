package db

import (
	"github.com/aldertane/vesta/internal/models"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) ListByUser(userID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) Create(goal *models.Goal) error {
	return repo.database.Create(goal).Error
}

func (repo *GoalRepository) UpdateSavedAmount(userID uint, goalID uint, savedAmount string) error {
	return repo.database.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Update("saved_amount", savedAmount).Error
}
