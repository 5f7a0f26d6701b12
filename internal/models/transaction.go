package models

import "time"

const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
	TransactionBuy        = "buy"
	TransactionSell       = "sell"

	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
)

type Transaction struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Reference string    `gorm:"uniqueIndex;not null"`
	Kind      string    `gorm:"not null"`
	Amount    string    `gorm:"not null"`
	Status    string    `gorm:"not null;default:completed"`
	Note      string
	CreatedAt time.Time `gorm:"not null"`
}

func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionDeposit, TransactionWithdrawal, TransactionBuy, TransactionSell:
		return true
	default:
		return false
	}
}
