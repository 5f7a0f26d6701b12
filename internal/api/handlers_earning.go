package api

import (
	"github.com/aldertane/vesta/internal/models"
	"github.com/gofiber/fiber/v2"
)

// ShowEarning summarizes money coming into the account: the available
// balance plus completed deposit and sell activity.
func (handler *Handler) ShowEarning(c *fiber.Ctx) error {
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

	inflows := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if transaction.Status != models.TransactionCompleted {
			continue
		}
		if transaction.Kind == models.TransactionDeposit || transaction.Kind == models.TransactionSell {
			inflows = append(inflows, transaction)
		}
	}

	return handler.render(c, "earning", fiber.Map{
		"Title":         "Vesta | Earning",
		"WalletBalance": balance.StringFixed(2),
		"Inflows":       inflows,
	})
}
