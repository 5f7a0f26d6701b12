package db

import (
	"errors"

	"github.com/aldertane/vesta/internal/models"
	"gorm.io/gorm"
)

type StepRepository struct {
	database *gorm.DB
}

func NewStepRepository(database *gorm.DB) *StepRepository {
	return &StepRepository{database: database}
}

func (repo *StepRepository) FindByUser(userID uint) ([]models.StepRecord, error) {
	records := make([]models.StepRecord, 0, models.StepCount)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("step_index ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *StepRepository) FindByUserAndStep(userID uint, stepIndex int) (models.StepRecord, bool, error) {
	var record models.StepRecord
	err := repo.database.
		Where("user_id = ? AND step_index = ?", userID, stepIndex).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.StepRecord{}, false, nil
	}
	if err != nil {
		return models.StepRecord{}, false, err
	}
	return record, true, nil
}

// UpsertDraft stores a partial field snapshot for a step without touching
// its completed flag. Drafts race (debounced autosaves can resolve out of
// order), so a draft whose revision is not greater than the stored one is
// dropped. Returns whether the snapshot was stored.
func (repo *StepRepository) UpsertDraft(userID uint, stepIndex int, fields map[string]string, revision int64) (bool, error) {
	stored := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.StepRecord
		findErr := tx.
			Where("user_id = ? AND step_index = ?", userID, stepIndex).
			First(&existing).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			record := models.StepRecord{
				UserID:    userID,
				StepIndex: stepIndex,
				Fields:    fields,
				Completed: false,
				Revision:  revision,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			stored = true
			return nil
		}
		if findErr != nil {
			return findErr
		}

		if revision <= existing.Revision {
			return nil
		}

		// Save through the struct so the JSON serializer on Fields applies.
		existing.Fields = fields
		existing.Revision = revision
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		stored = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return stored, nil
}

// UpsertCompleted stores a validated full submission and marks the step
// done. An explicit submit always supersedes any draft in flight, so the
// revision jumps past whatever the drafts reached.
func (repo *StepRepository) UpsertCompleted(userID uint, stepIndex int, fields map[string]string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.StepRecord
		findErr := tx.
			Where("user_id = ? AND step_index = ?", userID, stepIndex).
			First(&existing).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			record := models.StepRecord{
				UserID:    userID,
				StepIndex: stepIndex,
				Fields:    fields,
				Completed: true,
				Revision:  1,
			}
			return tx.Create(&record).Error
		}
		if findErr != nil {
			return findErr
		}

		existing.Fields = fields
		existing.Completed = true
		existing.Revision = existing.Revision + 1
		return tx.Save(&existing).Error
	})
}
