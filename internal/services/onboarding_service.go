package services

import (
	"errors"

	"github.com/aldertane/vesta/internal/models"
)

var ErrInvalidStepIndex = errors.New("invalid onboarding step index")

// OnboardingStatus is tri-state on purpose: Unknown is the value before
// any records check resolved and is never the same thing as Incomplete.
type OnboardingStatus int

const (
	StatusUnknown OnboardingStatus = iota
	StatusIncomplete
	StatusComplete
)

func (status OnboardingStatus) String() string {
	switch status {
	case StatusIncomplete:
		return "incomplete"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// StepSummary reports which onboarding steps have a completed record.
type StepSummary struct {
	HasProfile bool
	HasAddress bool
	HasGoals   bool
}

type OnboardingStepRepository interface {
	FindByUser(userID uint) ([]models.StepRecord, error)
	FindByUserAndStep(userID uint, stepIndex int) (models.StepRecord, bool, error)
	UpsertDraft(userID uint, stepIndex int, fields map[string]string, revision int64) (bool, error)
	UpsertCompleted(userID uint, stepIndex int, fields map[string]string) error
}

type OnboardingService struct {
	steps OnboardingStepRepository
}

func NewOnboardingService(steps OnboardingStepRepository) *OnboardingService {
	return &OnboardingService{steps: steps}
}

func (service *OnboardingService) Summary(userID uint) (StepSummary, error) {
	records, err := service.steps.FindByUser(userID)
	if err != nil {
		return StepSummary{}, err
	}

	summary := StepSummary{}
	for _, record := range records {
		if !record.Completed {
			continue
		}
		switch record.StepIndex {
		case models.StepProfile:
			summary.HasProfile = true
		case models.StepAddress:
			summary.HasAddress = true
		case models.StepGoals:
			summary.HasGoals = true
		}
	}
	return summary, nil
}

// Status derives completion from the step records alone: onboarding is
// complete exactly when a completed Goals record exists. The status is
// never cached; every check re-reads the store.
func (service *OnboardingService) Status(userID uint) (OnboardingStatus, error) {
	summary, err := service.Summary(userID)
	if err != nil {
		return StatusUnknown, err
	}
	if summary.HasGoals {
		return StatusComplete, nil
	}
	return StatusIncomplete, nil
}

// ResumePosition scans from the last step backward and resumes after the
// latest completed one. A later-step record is taken as evidence that the
// earlier steps are done without checking them — a user who somehow has an
// address record but no profile record resumes at the goals step anyway.
// This mirrors how resumption has always behaved; making it strictly
// sequential would move such users backward.
func ResumePosition(summary StepSummary) int {
	switch {
	case summary.HasGoals:
		return models.StepGoals
	case summary.HasAddress:
		return models.StepGoals
	case summary.HasProfile:
		return models.StepAddress
	default:
		return models.StepProfile
	}
}

// ResumePositionFor loads the summary and computes the resume step,
// falling back to the first step when the records fetch fails. Failing
// open to the beginning never blocks the user; it only re-asks questions.
func (service *OnboardingService) ResumePositionFor(userID uint) int {
	summary, err := service.Summary(userID)
	if err != nil {
		return models.StepProfile
	}
	return ResumePosition(summary)
}

func (service *OnboardingService) StepRecord(userID uint, stepIndex int) (models.StepRecord, bool, error) {
	if !models.IsValidStepIndex(stepIndex) {
		return models.StepRecord{}, false, ErrInvalidStepIndex
	}
	return service.steps.FindByUserAndStep(userID, stepIndex)
}

func (service *OnboardingService) SaveDraft(userID uint, stepIndex int, fields map[string]string, revision int64) (bool, error) {
	if !models.IsValidStepIndex(stepIndex) {
		return false, ErrInvalidStepIndex
	}
	return service.steps.UpsertDraft(userID, stepIndex, fields, revision)
}

func (service *OnboardingService) SubmitStep(userID uint, stepIndex int, fields map[string]string) error {
	if !models.IsValidStepIndex(stepIndex) {
		return ErrInvalidStepIndex
	}
	return service.steps.UpsertCompleted(userID, stepIndex, fields)
}
