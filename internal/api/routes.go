package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/signup", handler.ShowSignupPage)

	app.Get("/", handler.AuthRequired, handler.redirectToPostLogin)
	app.Get("/onboarding", handler.AuthRequired, handler.ShowOnboarding)
	app.Get("/user-onboarding", handler.AuthRequired, redirectToFirstStep)
	app.Get("/user-onboarding/step1", handler.AuthRequired, handler.ShowOnboardingStep)
	app.Get("/user-onboarding/step2", handler.AuthRequired, handler.ShowOnboardingStep)
	app.Get("/user-onboarding/step3", handler.AuthRequired, handler.ShowOnboardingStep)
	app.Post("/onboarding/step1", handler.AuthRequired, handler.SubmitOnboardingStep)
	app.Post("/onboarding/step2", handler.AuthRequired, handler.SubmitOnboardingStep)
	app.Post("/onboarding/step3", handler.AuthRequired, handler.SubmitOnboardingStep)
	app.Post("/onboarding/step1/draft", handler.AuthRequired, handler.SaveOnboardingDraft)
	app.Post("/onboarding/step2/draft", handler.AuthRequired, handler.SaveOnboardingDraft)
	app.Post("/onboarding/step3/draft", handler.AuthRequired, handler.SaveOnboardingDraft)
	app.Post("/onboarding/skip", handler.AuthRequired, handler.SkipOnboarding)

	for _, route := range protectedPageRoutes {
		pageHandler := handler.pageHandlerFor(route.Path)
		if route.RequireOnboardingComplete {
			app.Get(route.Path, handler.AuthRequired, handler.OnboardingCompleteRequired, pageHandler)
			continue
		}
		app.Get(route.Path, handler.AuthRequired, pageHandler)
	}
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	onboarding := api.Group("/onboarding", handler.AuthRequired)
	onboarding.Get("/status", handler.OnboardingStatus)
	onboarding.Get("/records", handler.OnboardingRecords)

	transactions := api.Group("/transactions", handler.AuthRequired)
	transactions.Post("", handler.CreateTransaction)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Post("", handler.CreateGoal)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/profile", handler.UpdateProfileSettings)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Delete("/delete-account", handler.DeleteAccount)
	// Browser forms cannot issue DELETE, so the same handler also
	// answers a plain POST.
	settings.Post("/delete-account", handler.DeleteAccount)
}

// pageHandlerFor maps an access-table path to its page renderer. The
// settings sub-pages share the settings screen with a section selector.
func (handler *Handler) pageHandlerFor(path string) fiber.Handler {
	switch path {
	case "/dashboard", "/app/portfolio":
		return handler.ShowDashboard
	case "/app/transactions":
		return handler.ShowTransactions
	case "/app/wallet":
		return handler.ShowWallet
	case "/app/goals":
		return handler.ShowGoals
	case "/app/earning":
		return handler.ShowEarning
	case "/app/subscription":
		return handler.ShowSubscription
	case "/app/news":
		return handler.ShowNews
	default:
		// /profile, /profile/edit and the settings sub-pages all share
		// the settings screen.
		return handler.ShowSettings
	}
}

func (handler *Handler) redirectToPostLogin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Redirect(handler.postLoginRedirectPath(c, user), fiber.StatusSeeOther)
}

func redirectToFirstStep(c *fiber.Ctx) error {
	return c.Redirect("/user-onboarding/step1", fiber.StatusSeeOther)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
