package api

import (
	"github.com/aldertane/vesta/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowWallet(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	balance, err := handler.portfolioService.WalletBalance(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load wallet balance")
	}

	transactions, err := handler.portfolioService.ListTransactions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load transactions")
	}

	recent := transactions
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return handler.render(c, "wallet", fiber.Map{
		"Title":              "Vesta | Wallet",
		"WalletBalance":      balance.StringFixed(2),
		"RecentTransactions": recent,
		"TransactionKinds":   []string{models.TransactionDeposit, models.TransactionWithdrawal},
	})
}
