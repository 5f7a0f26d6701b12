package api

import (
	"github.com/aldertane/vesta/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowTransactions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	transactions, err := handler.portfolioService.ListTransactions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load transactions")
	}
	balance, err := handler.portfolioService.WalletBalance(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load wallet balance")
	}

	return handler.render(c, "transactions", fiber.Map{
		"Title":         "Vesta | Transactions",
		"Transactions":  transactions,
		"WalletBalance": balance.StringFixed(2),
	})
}

func (handler *Handler) CreateTransaction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := transactionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	transaction, err := handler.portfolioService.RecordTransaction(user.ID, input.Kind, input.Amount, input.Note)
	switch err {
	case nil:
	case services.ErrTransactionKindInvalid:
		return apiError(c, fiber.StatusBadRequest, "unknown transaction kind")
	case services.ErrTransactionAmountInvalid:
		return apiError(c, fiber.StatusBadRequest, "amount must be a positive number")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to record transaction")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"reference": transaction.Reference,
			"kind":      transaction.Kind,
			"amount":    transaction.Amount,
			"status":    transaction.Status,
		})
	}
	return redirectOrJSON(c, "/app/transactions")
}
