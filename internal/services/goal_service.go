package services

import (
	"errors"
	"strings"
	"time"

	"github.com/aldertane/vesta/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrGoalTitleRequired = errors.New("goal title required")
	ErrGoalAmountInvalid = errors.New("goal target amount invalid")
	ErrGoalDateInvalid   = errors.New("goal target date invalid")
)

type GoalRepository interface {
	ListByUser(userID uint) ([]models.Goal, error)
	Create(goal *models.Goal) error
	UpdateSavedAmount(userID uint, goalID uint, savedAmount string) error
}

type GoalService struct {
	goals GoalRepository
}

func NewGoalService(goals GoalRepository) *GoalService {
	return &GoalService{goals: goals}
}

type GoalView struct {
	ID           uint
	Title        string
	TargetAmount string
	SavedAmount  string
	ProgressPct  string
	TargetDate   string
}

func (service *GoalService) ListForUser(userID uint) ([]GoalView, error) {
	goals, err := service.goals.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]GoalView, 0, len(goals))
	hundred := decimal.NewFromInt(100)
	for _, goal := range goals {
		target := parseDecimalOrZero(goal.TargetAmount)
		saved := parseDecimalOrZero(goal.SavedAmount)
		progress := decimal.Zero
		if target.IsPositive() {
			progress = saved.Div(target).Mul(hundred)
			if progress.GreaterThan(hundred) {
				progress = hundred
			}
		}

		targetDate := ""
		if goal.TargetDate != nil {
			targetDate = goal.TargetDate.Format("2006-01-02")
		}
		views = append(views, GoalView{
			ID:           goal.ID,
			Title:        goal.Title,
			TargetAmount: target.StringFixed(2),
			SavedAmount:  saved.StringFixed(2),
			ProgressPct:  progress.StringFixed(0),
			TargetDate:   targetDate,
		})
	}
	return views, nil
}

func (service *GoalService) CreateGoal(userID uint, title string, targetAmountRaw string, targetDateRaw string) (models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Goal{}, ErrGoalTitleRequired
	}

	targetAmount, err := decimal.NewFromString(strings.TrimSpace(targetAmountRaw))
	if err != nil || targetAmount.LessThanOrEqual(decimal.Zero) {
		return models.Goal{}, ErrGoalAmountInvalid
	}

	var targetDate *time.Time
	if raw := strings.TrimSpace(targetDateRaw); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return models.Goal{}, ErrGoalDateInvalid
		}
		targetDate = &parsed
	}

	goal := models.Goal{
		UserID:       userID,
		Title:        title,
		TargetAmount: targetAmount.StringFixed(2),
		SavedAmount:  "0",
		TargetDate:   targetDate,
	}
	if err := service.goals.Create(&goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}
