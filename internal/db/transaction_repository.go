package db

import (
	"github.com/aldertane/vesta/internal/models"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	database *gorm.DB
}

func NewTransactionRepository(database *gorm.DB) *TransactionRepository {
	return &TransactionRepository{database: database}
}

func (repo *TransactionRepository) ListByUser(userID uint) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (repo *TransactionRepository) Create(transaction *models.Transaction) error {
	return repo.database.Create(transaction).Error
}
