package services

import (
	"errors"
	"testing"

	"github.com/aldertane/vesta/internal/models"
)

type fakeStepRepository struct {
	records []models.StepRecord
	findErr error
}

func (repo *fakeStepRepository) FindByUser(userID uint) ([]models.StepRecord, error) {
	if repo.findErr != nil {
		return nil, repo.findErr
	}
	return repo.records, nil
}

func (repo *fakeStepRepository) FindByUserAndStep(userID uint, stepIndex int) (models.StepRecord, bool, error) {
	for _, record := range repo.records {
		if record.StepIndex == stepIndex {
			return record, true, nil
		}
	}
	return models.StepRecord{}, false, nil
}

func (repo *fakeStepRepository) UpsertDraft(userID uint, stepIndex int, fields map[string]string, revision int64) (bool, error) {
	return true, nil
}

func (repo *fakeStepRepository) UpsertCompleted(userID uint, stepIndex int, fields map[string]string) error {
	return nil
}

func completedRecord(step int) models.StepRecord {
	return models.StepRecord{StepIndex: step, Completed: true, Revision: 1}
}

func draftRecord(step int) models.StepRecord {
	return models.StepRecord{StepIndex: step, Completed: false, Revision: 2}
}

func TestStatusCompleteRequiresCompletedGoalsRecord(t *testing.T) {
	cases := []struct {
		name    string
		records []models.StepRecord
		want    OnboardingStatus
	}{
		{"no records", nil, StatusIncomplete},
		{"profile only", []models.StepRecord{completedRecord(models.StepProfile)}, StatusIncomplete},
		{"profile and address", []models.StepRecord{completedRecord(models.StepProfile), completedRecord(models.StepAddress)}, StatusIncomplete},
		{"goals draft only", []models.StepRecord{draftRecord(models.StepGoals)}, StatusIncomplete},
		{"completed goals", []models.StepRecord{completedRecord(models.StepGoals)}, StatusComplete},
		{"all completed", []models.StepRecord{completedRecord(models.StepProfile), completedRecord(models.StepAddress), completedRecord(models.StepGoals)}, StatusComplete},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			service := NewOnboardingService(&fakeStepRepository{records: testCase.records})
			status, err := service.Status(1)
			if err != nil {
				t.Fatalf("status check failed: %v", err)
			}
			if status != testCase.want {
				t.Fatalf("expected %v, got %v", testCase.want, status)
			}
		})
	}
}

func TestStatusReturnsUnknownOnRepositoryError(t *testing.T) {
	service := NewOnboardingService(&fakeStepRepository{findErr: errors.New("disk gone")})

	status, err := service.Status(1)
	if err == nil {
		t.Fatal("expected error from failing repository")
	}
	if status != StatusUnknown {
		t.Fatalf("expected unknown status on error, got %v", status)
	}
}

func TestResumePositionScansBackward(t *testing.T) {
	cases := []struct {
		name    string
		summary StepSummary
		want    int
	}{
		{"nothing done", StepSummary{}, models.StepProfile},
		{"profile done", StepSummary{HasProfile: true}, models.StepAddress},
		{"address done", StepSummary{HasProfile: true, HasAddress: true}, models.StepGoals},
		{"goals done", StepSummary{HasProfile: true, HasAddress: true, HasGoals: true}, models.StepGoals},
		// A later record implies the earlier steps are done even when no
		// record exists for them.
		{"address without profile", StepSummary{HasAddress: true}, models.StepGoals},
		{"goals without earlier steps", StepSummary{HasGoals: true}, models.StepGoals},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := ResumePosition(testCase.summary); got != testCase.want {
				t.Fatalf("expected step %d, got %d", testCase.want, got)
			}
		})
	}
}

func TestResumePositionForFallsBackToFirstStepOnError(t *testing.T) {
	service := NewOnboardingService(&fakeStepRepository{findErr: errors.New("disk gone")})

	if got := service.ResumePositionFor(1); got != models.StepProfile {
		t.Fatalf("expected fallback to step 1, got %d", got)
	}
}

func TestSummaryIgnoresDraftRecords(t *testing.T) {
	service := NewOnboardingService(&fakeStepRepository{records: []models.StepRecord{
		completedRecord(models.StepProfile),
		draftRecord(models.StepAddress),
	}})

	summary, err := service.Summary(1)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if !summary.HasProfile {
		t.Fatal("expected completed profile to count")
	}
	if summary.HasAddress {
		t.Fatal("expected address draft not to count")
	}
}

func TestSaveDraftRejectsInvalidStepIndex(t *testing.T) {
	service := NewOnboardingService(&fakeStepRepository{})

	if _, err := service.SaveDraft(1, 0, nil, 1); !errors.Is(err, ErrInvalidStepIndex) {
		t.Fatalf("expected invalid step error, got %v", err)
	}
	if _, err := service.SaveDraft(1, 4, nil, 1); !errors.Is(err, ErrInvalidStepIndex) {
		t.Fatalf("expected invalid step error, got %v", err)
	}
}

func TestSubmitStepRejectsInvalidStepIndex(t *testing.T) {
	service := NewOnboardingService(&fakeStepRepository{})

	if err := service.SubmitStep(1, 7, nil); !errors.Is(err, ErrInvalidStepIndex) {
		t.Fatalf("expected invalid step error, got %v", err)
	}
}
