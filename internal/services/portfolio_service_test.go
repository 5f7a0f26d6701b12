package services

import (
	"errors"
	"testing"

	"github.com/aldertane/vesta/internal/models"
)

type fakeHoldingRepository struct {
	holdings []models.Holding
}

func (repo *fakeHoldingRepository) ListByUser(userID uint) ([]models.Holding, error) {
	return repo.holdings, nil
}

func (repo *fakeHoldingRepository) Create(holding *models.Holding) error {
	repo.holdings = append(repo.holdings, *holding)
	return nil
}

type fakeTransactionRepository struct {
	transactions []models.Transaction
	createErr    error
}

func (repo *fakeTransactionRepository) ListByUser(userID uint) ([]models.Transaction, error) {
	return repo.transactions, nil
}

func (repo *fakeTransactionRepository) Create(transaction *models.Transaction) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.transactions = append(repo.transactions, *transaction)
	return nil
}

func completedTransaction(kind string, amount string) models.Transaction {
	return models.Transaction{Kind: kind, Amount: amount, Status: models.TransactionCompleted}
}

func TestWalletBalanceFoldsCompletedTransactions(t *testing.T) {
	transactions := &fakeTransactionRepository{transactions: []models.Transaction{
		completedTransaction(models.TransactionDeposit, "1000.00"),
		completedTransaction(models.TransactionBuy, "250.50"),
		completedTransaction(models.TransactionSell, "100.25"),
		completedTransaction(models.TransactionWithdrawal, "50.00"),
		{Kind: models.TransactionDeposit, Amount: "9999", Status: models.TransactionPending},
		{Kind: models.TransactionWithdrawal, Amount: "9999", Status: models.TransactionFailed},
	}}
	service := NewPortfolioService(&fakeHoldingRepository{}, transactions)

	balance, err := service.WalletBalance(7)
	if err != nil {
		t.Fatalf("wallet balance failed: %v", err)
	}
	if got := balance.StringFixed(2); got != "799.75" {
		t.Fatalf("expected balance 799.75, got %s", got)
	}
}

func TestSummaryComputesValuesAndWeights(t *testing.T) {
	holdings := &fakeHoldingRepository{holdings: []models.Holding{
		{Symbol: "VTI", Name: "Total Market", Category: "ETFs", Units: "10", UnitPrice: "200.00"},
		{Symbol: "AAPL", Name: "Apple", Category: "Stocks", Units: "5", UnitPrice: "100.00"},
		{Symbol: "GLD", Name: "Gold Trust", Category: "", Units: "2", UnitPrice: "250.00"},
	}}
	service := NewPortfolioService(holdings, &fakeTransactionRepository{})

	summary, err := service.Summary(7)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalValue != "3000.00" {
		t.Fatalf("expected total 3000.00, got %s", summary.TotalValue)
	}
	if summary.HoldingCount != 3 {
		t.Fatalf("expected 3 holdings, got %d", summary.HoldingCount)
	}

	weights := map[string]string{}
	for _, weight := range summary.CategoryWeights {
		weights[weight.Category] = weight.Percent
	}
	if weights["ETFs"] != "66.7" {
		t.Fatalf("expected ETFs weight 66.7, got %s", weights["ETFs"])
	}
	// A blank category is grouped under Other.
	if weights["Other"] != "16.7" {
		t.Fatalf("expected Other weight 16.7, got %s", weights["Other"])
	}
}

func TestRecordTransactionValidatesInput(t *testing.T) {
	service := NewPortfolioService(&fakeHoldingRepository{}, &fakeTransactionRepository{})

	if _, err := service.RecordTransaction(1, "steal", "100", ""); !errors.Is(err, ErrTransactionKindInvalid) {
		t.Fatalf("expected kind error, got %v", err)
	}
	if _, err := service.RecordTransaction(1, models.TransactionDeposit, "0", ""); !errors.Is(err, ErrTransactionAmountInvalid) {
		t.Fatalf("expected amount error for zero, got %v", err)
	}
	if _, err := service.RecordTransaction(1, models.TransactionDeposit, "-5", ""); !errors.Is(err, ErrTransactionAmountInvalid) {
		t.Fatalf("expected amount error for negative, got %v", err)
	}
	if _, err := service.RecordTransaction(1, models.TransactionDeposit, "not-money", ""); !errors.Is(err, ErrTransactionAmountInvalid) {
		t.Fatalf("expected amount error for garbage, got %v", err)
	}
}

func TestRecordTransactionAssignsReferenceAndNormalizesAmount(t *testing.T) {
	repo := &fakeTransactionRepository{}
	service := NewPortfolioService(&fakeHoldingRepository{}, repo)

	transaction, err := service.RecordTransaction(1, models.TransactionDeposit, " 250.5 ", "first deposit")
	if err != nil {
		t.Fatalf("record transaction failed: %v", err)
	}
	if transaction.Reference == "" {
		t.Fatal("expected generated reference")
	}
	if transaction.Amount != "250.50" {
		t.Fatalf("expected amount 250.50, got %s", transaction.Amount)
	}
	if transaction.Status != models.TransactionCompleted {
		t.Fatalf("expected completed status, got %s", transaction.Status)
	}
	if len(repo.transactions) != 1 {
		t.Fatalf("expected 1 stored transaction, got %d", len(repo.transactions))
	}
}
