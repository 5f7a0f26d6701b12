package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Steps        *StepRepository
	Holdings     *HoldingRepository
	Transactions *TransactionRepository
	Goals        *GoalRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Steps:        NewStepRepository(database),
		Holdings:     NewHoldingRepository(database),
		Transactions: NewTransactionRepository(database),
		Goals:        NewGoalRepository(database),
	}
}
