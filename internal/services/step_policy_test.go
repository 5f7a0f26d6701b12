package services

import (
	"testing"
	"time"
)

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"+12025550123", "+12025550123"},
		{"12025550123", "+12025550123"},
		{"(202) 555-0123", "+2025550123"},
		{"  12025550123  ", "+12025550123"},
		{"+0 invalid left alone", "+0 invalid left alone"},
		{"", ""},
	}

	for _, testCase := range cases {
		if got := NormalizePhoneNumber(testCase.input); got != testCase.want {
			t.Errorf("NormalizePhoneNumber(%q) = %q, want %q", testCase.input, got, testCase.want)
		}
	}
}

func TestInvestorAgeUsesYearDifferenceOnly(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	// Born later in the calendar year: still counts as 18 all year.
	dob := time.Date(2008, time.December, 31, 0, 0, 0, 0, time.UTC)
	if got := InvestorAge(dob, now); got != 18 {
		t.Fatalf("expected age 18, got %d", got)
	}
}

func TestProfileStepFieldsValidation(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	valid := map[string]string{
		"full_name":     "Jordan Reyes",
		"date_of_birth": "1990-04-12",
		"phone_number":  "+12025550123",
	}
	if errors := ProfileStepFields(valid, now); len(errors) != 0 {
		t.Fatalf("expected no errors, got %v", errors)
	}

	cases := []struct {
		name    string
		mutate  func(map[string]string)
		field   string
		message string
	}{
		{"missing name", func(f map[string]string) { f["full_name"] = "  " }, "full_name", "Full name is required"},
		{"missing dob", func(f map[string]string) { f["date_of_birth"] = "" }, "date_of_birth", "Date of birth is required"},
		{"malformed dob", func(f map[string]string) { f["date_of_birth"] = "12/04/1990" }, "date_of_birth", "Date of birth is required"},
		{"underage", func(f map[string]string) { f["date_of_birth"] = "2010-01-01" }, "date_of_birth", "You must be at least 18 years old"},
		{"missing phone", func(f map[string]string) { f["phone_number"] = "" }, "phone_number", "Phone number is required"},
		{"bad phone", func(f map[string]string) { f["phone_number"] = "+0123" }, "phone_number", "Phone number must be in E.164 format (e.g., +1234567890)"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			fields := map[string]string{}
			for key, value := range valid {
				fields[key] = value
			}
			testCase.mutate(fields)

			errors := ProfileStepFields(fields, now)
			if errors[testCase.field] != testCase.message {
				t.Fatalf("expected %q for %s, got %q", testCase.message, testCase.field, errors[testCase.field])
			}
		})
	}
}

func TestExactlyEighteenYearDifferencePasses(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	fields := map[string]string{
		"full_name":     "Jordan Reyes",
		"date_of_birth": "2008-06-15",
		"phone_number":  "+12025550123",
	}

	if errors := ProfileStepFields(fields, now); errors["date_of_birth"] != "" {
		t.Fatalf("expected exact 18-year difference to pass, got %q", errors["date_of_birth"])
	}
}

func TestAddressStepFieldsRequiresEveryField(t *testing.T) {
	valid := map[string]string{
		"street_address": "12 Market Street",
		"city":           "Springfield",
		"state":          "IL",
		"postal_code":    "62701",
		"country":        "USA",
	}
	if errors := AddressStepFields(valid); len(errors) != 0 {
		t.Fatalf("expected no errors, got %v", errors)
	}

	expected := map[string]string{
		"street_address": "Street address is required",
		"city":           "City is required",
		"state":          "State is required",
		"postal_code":    "Postal code is required",
		"country":        "Country is required",
	}
	for field, message := range expected {
		fields := map[string]string{}
		for key, value := range valid {
			fields[key] = value
		}
		fields[field] = "   "

		errors := AddressStepFields(fields)
		if errors[field] != message {
			t.Errorf("expected %q for %s, got %q", message, field, errors[field])
		}
	}
}

func TestGoalsStepFieldsValidation(t *testing.T) {
	valid := GoalsStepValues{
		TargetAmount:        "2500",
		PreferredCategories: []string{"Stocks"},
		FinancialObjectives: []string{"Retirement Planning"},
	}
	if errors := GoalsStepFields(valid); len(errors) != 0 {
		t.Fatalf("expected no errors, got %v", errors)
	}

	cases := []struct {
		name    string
		values  GoalsStepValues
		field   string
		message string
	}{
		{
			"missing amount",
			GoalsStepValues{PreferredCategories: valid.PreferredCategories, FinancialObjectives: valid.FinancialObjectives},
			"target_amount", "Target investment amount is required",
		},
		{
			"non-numeric amount",
			GoalsStepValues{TargetAmount: "lots", PreferredCategories: valid.PreferredCategories, FinancialObjectives: valid.FinancialObjectives},
			"target_amount", "Target investment amount is required",
		},
		{
			"amount below minimum",
			GoalsStepValues{TargetAmount: "99.99", PreferredCategories: valid.PreferredCategories, FinancialObjectives: valid.FinancialObjectives},
			"target_amount", "Minimum investment amount is $100",
		},
		{
			"no categories",
			GoalsStepValues{TargetAmount: "2500", FinancialObjectives: valid.FinancialObjectives},
			"preferred_categories", "Please select at least one investment category",
		},
		{
			"blank categories",
			GoalsStepValues{TargetAmount: "2500", PreferredCategories: []string{" ", ""}, FinancialObjectives: valid.FinancialObjectives},
			"preferred_categories", "Please select at least one investment category",
		},
		{
			"no objectives",
			GoalsStepValues{TargetAmount: "2500", PreferredCategories: valid.PreferredCategories},
			"financial_objectives", "Please select at least one financial objective",
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			errors := GoalsStepFields(testCase.values)
			if errors[testCase.field] != testCase.message {
				t.Fatalf("expected %q, got %q", testCase.message, errors[testCase.field])
			}
		})
	}
}

func TestGoalsStepAcceptsExactMinimum(t *testing.T) {
	values := GoalsStepValues{
		TargetAmount:        "100",
		PreferredCategories: []string{"Bonds"},
		FinancialObjectives: []string{"Emergency Fund"},
	}
	if errors := GoalsStepFields(values); errors["target_amount"] != "" {
		t.Fatalf("expected exactly 100 to pass, got %q", errors["target_amount"])
	}
}
