package api

// routeAccess is the explicit access table for protected pages. Every
// page route is listed with whether it demands completed onboarding, so
// the split is a reviewed configuration instead of something inferred
// route by route. The member pages that skip the completion requirement
// (profile, transactions, wallet, goals, earning, subscription, news,
// settings) reflect observed product behavior and are kept that way on
// purpose.
type routeAccess struct {
	Path                      string
	RequireOnboardingComplete bool
}

var protectedPageRoutes = []routeAccess{
	{Path: "/dashboard", RequireOnboardingComplete: true},
	{Path: "/app/portfolio", RequireOnboardingComplete: true},
	{Path: "/profile", RequireOnboardingComplete: false},
	{Path: "/profile/edit", RequireOnboardingComplete: false},
	{Path: "/app/transactions", RequireOnboardingComplete: false},
	{Path: "/app/wallet", RequireOnboardingComplete: false},
	{Path: "/app/goals", RequireOnboardingComplete: false},
	{Path: "/app/earning", RequireOnboardingComplete: false},
	{Path: "/app/subscription", RequireOnboardingComplete: false},
	{Path: "/app/news", RequireOnboardingComplete: false},
	{Path: "/app/settings", RequireOnboardingComplete: false},
	{Path: "/app/settings/users", RequireOnboardingComplete: false},
	{Path: "/app/settings/timing", RequireOnboardingComplete: false},
	{Path: "/app/settings/payments", RequireOnboardingComplete: false},
	{Path: "/app/settings/contact", RequireOnboardingComplete: false},
}

func routeRequiresCompletedOnboarding(path string) bool {
	for _, route := range protectedPageRoutes {
		if route.Path == path {
			return route.RequireOnboardingComplete
		}
	}
	return false
}
