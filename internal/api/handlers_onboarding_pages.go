package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aldertane/vesta/internal/models"
	"github.com/aldertane/vesta/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ShowOnboarding resumes the wizard at the step after the latest
// completed one. Users whose onboarding is already complete have nothing
// left to answer here and go straight to the dashboard.
func (handler *Handler) ShowOnboarding(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if handler.resolveOnboardingStatus(c, user.ID) == services.StatusComplete {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	step := handler.onboardingSvc.ResumePositionFor(user.ID)
	return handler.renderOnboardingStep(c, user, step, nil, nil)
}

// ShowOnboardingStep renders one wizard step directly from its legacy
// /user-onboarding/stepN address. Steps are reachable in any order;
// resumption is a convenience, not a gate.
func (handler *Handler) ShowOnboardingStep(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	step, err := stepIndexFromPath(c.Path())
	if err != nil {
		return c.Redirect("/onboarding", fiber.StatusSeeOther)
	}
	return handler.renderOnboardingStep(c, user, step, nil, nil)
}

func (handler *Handler) renderOnboardingStep(c *fiber.Ctx, user *models.User, step int, fields map[string]string, fieldErrors map[string]string) error {
	// The stored revision seeds the page's autosave counter; a counter
	// restarting below it would have every new draft dropped as stale.
	var draftRevision int64
	if record, found, err := handler.onboardingSvc.StepRecord(user.ID, step); err == nil && found {
		draftRevision = record.Revision
		if fields == nil {
			fields = record.Fields
		}
	}
	if fields == nil {
		fields = map[string]string{}
	}
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}

	summary, err := handler.onboardingSvc.Summary(user.ID)
	if err != nil {
		summary = services.StepSummary{}
	}

	return handler.render(c, "onboarding", fiber.Map{
		"Title":                fmt.Sprintf("Vesta | Onboarding Step %d of %d", step, models.StepCount),
		"Step":                 step,
		"PrevStep":             step - 1,
		"StepCount":            models.StepCount,
		"ProgressPct":          (step - 1) * 100 / models.StepCount,
		"Fields":               fields,
		"FieldErrors":          fieldErrors,
		"DraftRevision":        draftRevision,
		"Summary":              summary,
		"ExperienceLevels":     services.ExperienceLevels(),
		"InvestmentCategories": services.InvestmentCategories(),
		"FinancialObjectives":  services.FinancialObjectives(),
		"RedirectPath":         sanitizeRedirectPath(c.Query("redirect"), ""),
		"SubmitPath":           fmt.Sprintf("/onboarding/step%d", step),
		"DraftPath":            fmt.Sprintf("/onboarding/step%d/draft", step),
	})
}

// stepIndexFromPath pulls the step number out of /onboarding/stepN,
// /onboarding/stepN/draft and /user-onboarding/stepN paths.
func stepIndexFromPath(path string) (int, error) {
	trimmed := strings.TrimSuffix(path, "/draft")
	marker := strings.LastIndex(trimmed, "/step")
	if marker < 0 {
		return 0, services.ErrInvalidStepIndex
	}
	step, err := strconv.Atoi(trimmed[marker+len("/step"):])
	if err != nil || !models.IsValidStepIndex(step) {
		return 0, services.ErrInvalidStepIndex
	}
	return step, nil
}
