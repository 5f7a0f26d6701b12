package api

import "github.com/gofiber/fiber/v2"

type newsItem struct {
	Headline string
	Summary  string
}

// Curated market notes shown on the news page. There is no external
// feed; the content is maintained with the application.
var newsItems = []newsItem{
	{
		Headline: "Diversification still does the heavy lifting",
		Summary:  "Spreading holdings across categories keeps any single position from dominating your portfolio's swings.",
	},
	{
		Headline: "Why a target amount matters",
		Summary:  "Goals with a concrete number and date are the ones people actually fund. Set both in the goals page.",
	},
	{
		Headline: "Reading your category weights",
		Summary:  "The dashboard's weight table shows where your money sits today, not where you planned it to be. Rebalance when the two drift apart.",
	},
}

func (handler *Handler) ShowNews(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	return handler.render(c, "news", fiber.Map{
		"Title": "Vesta | News",
		"Items": newsItems,
	})
}
