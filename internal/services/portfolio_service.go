package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/aldertane/vesta/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionKindInvalid   = errors.New("transaction kind invalid")
	ErrTransactionAmountInvalid = errors.New("transaction amount invalid")
)

type PortfolioHoldingRepository interface {
	ListByUser(userID uint) ([]models.Holding, error)
	Create(holding *models.Holding) error
}

type PortfolioTransactionRepository interface {
	ListByUser(userID uint) ([]models.Transaction, error)
	Create(transaction *models.Transaction) error
}

type PortfolioService struct {
	holdings     PortfolioHoldingRepository
	transactions PortfolioTransactionRepository
}

func NewPortfolioService(holdings PortfolioHoldingRepository, transactions PortfolioTransactionRepository) *PortfolioService {
	return &PortfolioService{holdings: holdings, transactions: transactions}
}

type HoldingView struct {
	Symbol    string
	Name      string
	Category  string
	Units     string
	UnitPrice string
	Value     string
	ChangePct string
}

type CategoryWeight struct {
	Category string
	Value    string
	Percent  string
}

type PortfolioSummary struct {
	TotalValue      string
	WalletBalance   string
	HoldingCount    int
	Holdings        []HoldingView
	CategoryWeights []CategoryWeight
}

func (service *PortfolioService) Summary(userID uint) (PortfolioSummary, error) {
	holdings, err := service.holdings.ListByUser(userID)
	if err != nil {
		return PortfolioSummary{}, err
	}

	total := decimal.Zero
	categoryTotals := map[string]decimal.Decimal{}
	views := make([]HoldingView, 0, len(holdings))
	for _, holding := range holdings {
		units := parseDecimalOrZero(holding.Units)
		unitPrice := parseDecimalOrZero(holding.UnitPrice)
		value := units.Mul(unitPrice)
		total = total.Add(value)

		category := strings.TrimSpace(holding.Category)
		if category == "" {
			category = "Other"
		}
		categoryTotals[category] = categoryTotals[category].Add(value)

		views = append(views, HoldingView{
			Symbol:    holding.Symbol,
			Name:      holding.Name,
			Category:  category,
			Units:     units.String(),
			UnitPrice: unitPrice.StringFixed(2),
			Value:     value.StringFixed(2),
			ChangePct: holding.ChangePct,
		})
	}

	balance, err := service.WalletBalance(userID)
	if err != nil {
		return PortfolioSummary{}, err
	}

	return PortfolioSummary{
		TotalValue:      total.StringFixed(2),
		WalletBalance:   balance.StringFixed(2),
		HoldingCount:    len(views),
		Holdings:        views,
		CategoryWeights: buildCategoryWeights(categoryTotals, total),
	}, nil
}

// WalletBalance folds the transaction history: deposits and sells add,
// withdrawals and buys subtract. Pending and failed rows do not count.
func (service *PortfolioService) WalletBalance(userID uint) (decimal.Decimal, error) {
	transactions, err := service.transactions.ListByUser(userID)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Status != models.TransactionCompleted {
			continue
		}
		amount := parseDecimalOrZero(transaction.Amount)
		switch transaction.Kind {
		case models.TransactionDeposit, models.TransactionSell:
			balance = balance.Add(amount)
		case models.TransactionWithdrawal, models.TransactionBuy:
			balance = balance.Sub(amount)
		}
	}
	return balance, nil
}

func (service *PortfolioService) ListTransactions(userID uint) ([]models.Transaction, error) {
	return service.transactions.ListByUser(userID)
}

func (service *PortfolioService) RecordTransaction(userID uint, kind string, amountRaw string, note string) (models.Transaction, error) {
	if !models.IsValidTransactionKind(kind) {
		return models.Transaction{}, ErrTransactionKindInvalid
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(amountRaw))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return models.Transaction{}, ErrTransactionAmountInvalid
	}

	transaction := models.Transaction{
		UserID:    userID,
		Reference: uuid.NewString(),
		Kind:      kind,
		Amount:    amount.StringFixed(2),
		Status:    models.TransactionCompleted,
		Note:      strings.TrimSpace(note),
		CreatedAt: time.Now(),
	}
	if err := service.transactions.Create(&transaction); err != nil {
		return models.Transaction{}, err
	}
	return transaction, nil
}

func buildCategoryWeights(categoryTotals map[string]decimal.Decimal, total decimal.Decimal) []CategoryWeight {
	weights := make([]CategoryWeight, 0, len(categoryTotals))
	hundred := decimal.NewFromInt(100)
	for category, value := range categoryTotals {
		percent := decimal.Zero
		if total.IsPositive() {
			percent = value.Div(total).Mul(hundred)
		}
		weights = append(weights, CategoryWeight{
			Category: category,
			Value:    value.StringFixed(2),
			Percent:  percent.StringFixed(1),
		})
	}
	sort.Slice(weights, func(i, j int) bool {
		return weights[i].Category < weights[j].Category
	})
	return weights
}

func parseDecimalOrZero(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return value
}
