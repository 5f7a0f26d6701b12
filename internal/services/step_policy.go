package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	minimumInvestorAge      = 18
	minimumInvestmentAmount = 100
)

var phoneE164Regex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
var phoneDigitsRegex = regexp.MustCompile(`\D`)

// NormalizePhoneNumber coerces bare digit input into E.164 shape by
// stripping separators and prepending a plus. Input that already carries
// a plus is left alone for the validator to judge.
func NormalizePhoneNumber(raw string) string {
	phone := strings.TrimSpace(raw)
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + phoneDigitsRegex.ReplaceAllString(phone, "")
}

// InvestorAge approximates age as a plain year difference. Month and day
// are ignored, so someone turning 18 later this year already passes.
func InvestorAge(dateOfBirth time.Time, now time.Time) int {
	return now.Year() - dateOfBirth.Year()
}

// ProfileStepFields validates the profile step and returns a field-keyed
// error map; an empty map means the step may advance.
func ProfileStepFields(fields map[string]string, now time.Time) map[string]string {
	fieldErrors := map[string]string{}

	if strings.TrimSpace(fields["full_name"]) == "" {
		fieldErrors["full_name"] = "Full name is required"
	}

	dateOfBirth := strings.TrimSpace(fields["date_of_birth"])
	if dateOfBirth == "" {
		fieldErrors["date_of_birth"] = "Date of birth is required"
	} else {
		parsed, err := time.Parse("2006-01-02", dateOfBirth)
		if err != nil {
			fieldErrors["date_of_birth"] = "Date of birth is required"
		} else if InvestorAge(parsed, now) < minimumInvestorAge {
			fieldErrors["date_of_birth"] = "You must be at least 18 years old"
		}
	}

	phone := NormalizePhoneNumber(fields["phone_number"])
	if phone == "" {
		fieldErrors["phone_number"] = "Phone number is required"
	} else if !phoneE164Regex.MatchString(phone) {
		fieldErrors["phone_number"] = "Phone number must be in E.164 format (e.g., +1234567890)"
	}

	if experience := strings.TrimSpace(fields["investment_experience"]); experience != "" && !isKnownExperienceLevel(experience) {
		fieldErrors["investment_experience"] = "Select a valid experience level"
	}

	return fieldErrors
}

// AddressStepFields validates the address step: every field is required
// free text, nothing beyond non-empty is checked.
func AddressStepFields(fields map[string]string) map[string]string {
	fieldErrors := map[string]string{}

	required := []struct {
		key     string
		message string
	}{
		{"street_address", "Street address is required"},
		{"city", "City is required"},
		{"state", "State is required"},
		{"postal_code", "Postal code is required"},
		{"country", "Country is required"},
	}
	for _, field := range required {
		if strings.TrimSpace(fields[field.key]) == "" {
			fieldErrors[field.key] = field.message
		}
	}

	return fieldErrors
}

type GoalsStepValues struct {
	TargetAmount        string
	PreferredCategories []string
	FinancialObjectives []string
	RiskTolerance       string
	InvestmentTimeline  string
}

// GoalsStepFields validates the goals step. The target amount must parse
// as a decimal of at least 100, and both multi-selects need at least one
// entry.
func GoalsStepFields(values GoalsStepValues) map[string]string {
	fieldErrors := map[string]string{}

	amountRaw := strings.TrimSpace(values.TargetAmount)
	if amountRaw == "" {
		fieldErrors["target_amount"] = "Target investment amount is required"
	} else {
		amount, err := decimal.NewFromString(amountRaw)
		if err != nil {
			fieldErrors["target_amount"] = "Target investment amount is required"
		} else if amount.LessThan(decimal.NewFromInt(minimumInvestmentAmount)) {
			fieldErrors["target_amount"] = "Minimum investment amount is $100"
		}
	}

	if len(compactSelections(values.PreferredCategories)) == 0 {
		fieldErrors["preferred_categories"] = "Please select at least one investment category"
	}
	if len(compactSelections(values.FinancialObjectives)) == 0 {
		fieldErrors["financial_objectives"] = "Please select at least one financial objective"
	}

	return fieldErrors
}

func compactSelections(values []string) []string {
	compacted := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			compacted = append(compacted, strings.TrimSpace(value))
		}
	}
	return compacted
}

func isKnownExperienceLevel(value string) bool {
	for _, level := range ExperienceLevels() {
		if level == value {
			return true
		}
	}
	return false
}

func ExperienceLevels() []string {
	return []string{"beginner", "intermediate", "advanced", "expert"}
}

func InvestmentCategories() []string {
	return []string{
		"Stocks", "Bonds", "ETFs", "Mutual Funds",
		"Real Estate", "Commodities", "Cryptocurrency", "International Markets",
	}
}

func FinancialObjectives() []string {
	return []string{
		"Retirement Planning", "Wealth Building", "Income Generation", "Capital Preservation",
		"Education Funding", "Emergency Fund", "Major Purchase", "Tax Optimization",
	}
}
