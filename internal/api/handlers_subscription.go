package api

import "github.com/gofiber/fiber/v2"

type subscriptionPlan struct {
	Name     string
	Price    string
	Features []string
}

// The plan catalogue is static; billing itself is not handled here.
var subscriptionPlans = []subscriptionPlan{
	{
		Name:  "Starter",
		Price: "Free",
		Features: []string{
			"Portfolio dashboard",
			"Wallet and transaction history",
			"Up to 3 savings goals",
		},
	},
	{
		Name:  "Growth",
		Price: "$9/month",
		Features: []string{
			"Everything in Starter",
			"Unlimited savings goals",
			"Category weight breakdowns",
		},
	},
	{
		Name:  "Premier",
		Price: "$29/month",
		Features: []string{
			"Everything in Growth",
			"Priority support",
			"Early access to new features",
		},
	},
}

func (handler *Handler) ShowSubscription(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	return handler.render(c, "subscription", fiber.Map{
		"Title": "Vesta | Subscription",
		"Plans": subscriptionPlans,
	})
}
