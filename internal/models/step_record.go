package models

import "time"

const (
	StepProfile = 1
	StepAddress = 2
	StepGoals   = 3

	StepCount = 3
)

// StepRecord holds one onboarding step's submitted or drafted fields.
// There is at most one record per (user, step); saves are upserts and
// records are never deleted. Revision is a client-supplied counter that
// orders autosave drafts: a draft with a revision at or below the stored
// one is stale and must be ignored.
type StepRecord struct {
	ID        uint              `gorm:"primaryKey"`
	UserID    uint              `gorm:"not null;uniqueIndex:uidx_user_step"`
	StepIndex int               `gorm:"not null;uniqueIndex:uidx_user_step"`
	Fields    map[string]string `gorm:"serializer:json"`
	Completed bool              `gorm:"not null;default:false"`
	Revision  int64             `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidStepIndex(step int) bool {
	return step >= StepProfile && step <= StepGoals
}
