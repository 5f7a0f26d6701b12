package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aldertane/vesta/internal/models"
	"github.com/aldertane/vesta/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SubmitOnboardingStep validates and persists one wizard step. A failed
// validation re-renders the step with the typed values and per-field
// messages; a successful goals step finishes onboarding and lands on the
// dashboard.
func (handler *Handler) SubmitOnboardingStep(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	step, err := stepIndexFromPath(c.Path())
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "unknown onboarding step")
	}

	fields := handler.onboardingStepFields(c, step)
	fieldErrors := handler.validateStepFields(step, fields)
	if len(fieldErrors) > 0 {
		if acceptsJSON(c) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": fieldErrors})
		}
		return handler.renderOnboardingStep(c, user, step, fields, fieldErrors)
	}

	if err := handler.onboardingSvc.SubmitStep(user.ID, step, fields); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save onboarding step")
	}

	if step < models.StepGoals {
		return redirectOrJSON(c, fmt.Sprintf("/user-onboarding/step%d", step+1))
	}

	// Finishing the goals step flips the derived status to complete, so
	// any leftover skip pass is meaningless from here on.
	handler.clearSkipCookie(c)
	return redirectOrJSON(c, sanitizeRedirectPath(c.FormValue("redirect"), "/dashboard"))
}

// SaveOnboardingDraft persists a debounced autosave. Stale revisions are
// acknowledged but not stored, so an in-flight save from before the
// user's latest keystroke can never clobber newer data.
func (handler *Handler) SaveOnboardingDraft(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	step, err := stepIndexFromPath(c.Path())
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "unknown onboarding step")
	}

	revision, err := strconv.ParseInt(strings.TrimSpace(c.FormValue("revision")), 10, 64)
	if err != nil || revision < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid draft revision")
	}

	fields := handler.onboardingStepFields(c, step)
	stored, err := handler.onboardingSvc.SaveDraft(user.ID, step, fields, revision)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save draft")
	}
	return c.JSON(fiber.Map{"ok": true, "stored": stored, "revision": revision})
}

// SkipOnboarding issues a single-use pass into the completion-gated
// pages. The pass is a session cookie consumed on first use; the next
// gated request redirects back into the wizard.
func (handler *Handler) SkipOnboarding(c *fiber.Ctx) error {
	handler.setSkipCookie(c)
	return redirectOrJSON(c, "/dashboard")
}

func (handler *Handler) OnboardingStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	summary, err := handler.onboardingSvc.Summary(user.ID)
	if err != nil {
		// Fail closed: an unreadable store reports incomplete rather
		// than letting anyone through the gate.
		return c.JSON(fiber.Map{"status": services.StatusIncomplete.String()})
	}

	status := services.StatusIncomplete
	if summary.HasGoals {
		status = services.StatusComplete
	}
	return c.JSON(fiber.Map{
		"status":      status.String(),
		"resume_step": services.ResumePosition(summary),
		"steps": fiber.Map{
			"profile": summary.HasProfile,
			"address": summary.HasAddress,
			"goals":   summary.HasGoals,
		},
	})
}

func (handler *Handler) OnboardingRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	records, err := handler.repositories.Steps.FindByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load onboarding records")
	}

	payload := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		payload = append(payload, fiber.Map{
			"step":       record.StepIndex,
			"completed":  record.Completed,
			"revision":   record.Revision,
			"fields":     record.Fields,
			"updated_at": record.UpdatedAt.In(handler.location).Format(time.RFC3339),
		})
	}
	return c.JSON(fiber.Map{"records": payload})
}

// onboardingStepFields collects the form values a step owns into the
// stored fields map. Multi-selects are joined with commas since fields
// are flat strings.
func (handler *Handler) onboardingStepFields(c *fiber.Ctx, step int) map[string]string {
	switch step {
	case models.StepProfile:
		return map[string]string{
			"full_name":             strings.TrimSpace(c.FormValue("full_name")),
			"date_of_birth":         strings.TrimSpace(c.FormValue("date_of_birth")),
			"phone_number":          services.NormalizePhoneNumber(c.FormValue("phone_number")),
			"investment_experience": strings.TrimSpace(c.FormValue("investment_experience")),
		}
	case models.StepAddress:
		return map[string]string{
			"street_address": strings.TrimSpace(c.FormValue("street_address")),
			"city":           strings.TrimSpace(c.FormValue("city")),
			"state":          strings.TrimSpace(c.FormValue("state")),
			"postal_code":    strings.TrimSpace(c.FormValue("postal_code")),
			"country":        strings.TrimSpace(c.FormValue("country")),
		}
	default:
		return map[string]string{
			"target_amount":        strings.TrimSpace(c.FormValue("target_amount")),
			"risk_tolerance":       strings.TrimSpace(c.FormValue("risk_tolerance")),
			"investment_timeline":  strings.TrimSpace(c.FormValue("investment_timeline")),
			"preferred_categories": strings.Join(formValues(c, "preferred_categories"), ","),
			"financial_objectives": strings.Join(formValues(c, "financial_objectives"), ","),
		}
	}
}

func (handler *Handler) validateStepFields(step int, fields map[string]string) map[string]string {
	switch step {
	case models.StepProfile:
		return services.ProfileStepFields(fields, time.Now().In(handler.location))
	case models.StepAddress:
		return services.AddressStepFields(fields)
	default:
		return services.GoalsStepFields(services.GoalsStepValues{
			TargetAmount:        fields["target_amount"],
			PreferredCategories: splitSelections(fields["preferred_categories"]),
			FinancialObjectives: splitSelections(fields["financial_objectives"]),
			RiskTolerance:       fields["risk_tolerance"],
			InvestmentTimeline:  fields["investment_timeline"],
		})
	}
}

func formValues(c *fiber.Ctx, key string) []string {
	raw := c.Request().PostArgs().PeekMulti(key)
	values := make([]string, 0, len(raw))
	for _, value := range raw {
		if trimmed := strings.TrimSpace(string(value)); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return splitSelections(c.FormValue(key))
	}
	return values
}

func splitSelections(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
