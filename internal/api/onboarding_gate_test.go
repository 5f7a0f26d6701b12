package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/aldertane/vesta/internal/models"
)

func TestDashboardRedirectsIncompleteUserIntoOnboarding(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "fresh@example.com", "Sup3rSecret")
	cookie := loginAndExtractAuthCookie(t, app, "fresh@example.com", "Sup3rSecret")

	response := doGetRequest(t, app, "/dashboard", cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	location := response.Header.Get("Location")
	if !strings.HasPrefix(location, "/onboarding") {
		t.Fatalf("expected redirect into onboarding, got %q", location)
	}
	if !strings.Contains(location, "redirect=%2Fdashboard") {
		t.Fatalf("expected original path preserved in redirect, got %q", location)
	}
}

func TestDashboardServesCompletedUser(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "done@example.com", "Sup3rSecret")
	completeOnboardingSteps(t, database, user.ID, models.StepProfile, models.StepAddress, models.StepGoals)
	cookie := loginAndExtractAuthCookie(t, app, "done@example.com", "Sup3rSecret")

	response := doGetRequest(t, app, "/dashboard", cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
}

func TestGoalsRecordAloneCompletesOnboarding(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "goals-only@example.com", "Sup3rSecret")
	completeOnboardingSteps(t, database, user.ID, models.StepGoals)
	cookie := loginAndExtractAuthCookie(t, app, "goals-only@example.com", "Sup3rSecret")

	response := doGetRequest(t, app, "/dashboard", cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for user with completed goals step, got %d", response.StatusCode)
	}
}

func TestAuthOnlyPagesServeIncompleteUser(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "partial@example.com", "Sup3rSecret")
	cookie := loginAndExtractAuthCookie(t, app, "partial@example.com", "Sup3rSecret")

	for _, path := range []string{
		"/profile", "/profile/edit",
		"/app/transactions", "/app/wallet", "/app/goals",
		"/app/earning", "/app/subscription", "/app/news",
		"/app/settings",
	} {
		response := doGetRequest(t, app, path, cookie)
		if response.StatusCode != http.StatusOK {
			t.Errorf("expected status 200 for %s, got %d", path, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestPortfolioPageRequiresCompletedOnboarding(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "portfolio@example.com", "Sup3rSecret")
	cookie := loginAndExtractAuthCookie(t, app, "portfolio@example.com", "Sup3rSecret")

	response := doGetRequest(t, app, "/app/portfolio", cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); !strings.HasPrefix(location, "/onboarding") {
		t.Fatalf("expected redirect into onboarding, got %q", location)
	}
}

func TestSkipGrantsSingleDashboardVisit(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "skipper@example.com", "Sup3rSecret")
	authCookie := loginAndExtractAuthCookie(t, app, "skipper@example.com", "Sup3rSecret")

	skipResponse := doFormRequest(t, app, http.MethodPost, "/onboarding/skip", url.Values{}, authCookie)
	defer skipResponse.Body.Close()
	if skipResponse.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected skip status 303, got %d", skipResponse.StatusCode)
	}

	skipCookie := ""
	for _, cookie := range skipResponse.Cookies() {
		if cookie.Name == "vesta_onboarding_skip" && cookie.Value != "" {
			skipCookie = cookie.Name + "=" + cookie.Value
		}
	}
	if skipCookie == "" {
		t.Fatal("expected skip cookie in skip response")
	}

	// First visit passes the gate and consumes the pass.
	firstVisit := doGetRequest(t, app, "/dashboard", authCookie, skipCookie)
	defer firstVisit.Body.Close()
	if firstVisit.StatusCode != http.StatusOK {
		t.Fatalf("expected first dashboard visit to succeed, got %d", firstVisit.StatusCode)
	}

	consumed := false
	for _, cookie := range firstVisit.Cookies() {
		if cookie.Name == "vesta_onboarding_skip" && cookie.Value == "" {
			consumed = true
		}
	}
	if !consumed {
		t.Fatal("expected skip cookie cleared after first gated visit")
	}

	// Without the cookie the next visit redirects into the wizard again.
	secondVisit := doGetRequest(t, app, "/dashboard", authCookie)
	defer secondVisit.Body.Close()
	if secondVisit.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected second dashboard visit to redirect, got %d", secondVisit.StatusCode)
	}
}

func TestOnboardingPageRedirectsCompletedUserToDashboard(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "alumni@example.com", "Sup3rSecret")
	completeOnboardingSteps(t, database, user.ID, models.StepProfile, models.StepAddress, models.StepGoals)
	cookie := loginAndExtractAuthCookie(t, app, "alumni@example.com", "Sup3rSecret")

	response := doGetRequest(t, app, "/onboarding", cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", location)
	}
}

func TestLoginLandsOnOnboardingForIncompleteUser(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "landing@example.com", "Sup3rSecret")

	form := url.Values{
		"email":    {"landing@example.com"},
		"password": {"Sup3rSecret"},
	}
	response := doFormRequest(t, app, http.MethodPost, "/api/auth/login", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/onboarding" {
		t.Fatalf("expected redirect to /onboarding, got %q", location)
	}
}
