package goal

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type GoalType string

const (
	TypeTasks      GoalType = "tasks"
	TypeIncome     GoalType = "income"
	TypeHabits     GoalType = "habits"
	TypeFocusHours GoalType = "focus_hours"
	TypeCustom     GoalType = "custom"
)

// WeeklyGoal is a target scoped to one Monday-anchored week. IsCompleted
// latches on the first progress update where current >= target and only an
// explicit edit of the target can ever unset it.
type WeeklyGoal struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	WeekStart    time.Time `json:"week_start" db:"week_start"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description" db:"description"`
	GoalType     GoalType  `json:"goal_type" db:"goal_type"`
	TargetValue  float64   `json:"target_value" db:"target_value"`
	CurrentValue float64   `json:"current_value" db:"current_value"`
	IsCompleted  bool      `json:"is_completed" db:"is_completed"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type CreateGoalRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	GoalType    GoalType `json:"goal_type" validate:"required"`
	TargetValue float64  `json:"target_value" validate:"required"`
}

type UpdateProgressRequest struct {
	Value float64 `json:"value"`
}

// WeekStart returns the Monday of t's week at day granularity, the anchor
// all weekly goals hang off.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// ApplyProgress follows the same completion-latch contract as daily
// challenges: no-op when already completed, otherwise set the value and
// latch completion the moment it reaches the target. The caller persists
// value and flag in one write.
func ApplyProgress(g WeeklyGoal, value float64) (WeeklyGoal, bool, error) {
	if g.TargetValue <= 0 {
		return g, false, errors.New("goal target must be positive")
	}
	if value < 0 {
		return g, false, errors.New("goal progress cannot be negative")
	}
	if g.IsCompleted {
		return g, false, nil
	}

	g.CurrentValue = value
	if value >= g.TargetValue {
		g.IsCompleted = true
		return g, true, nil
	}
	return g, false, nil
}

// Matches reports whether an activity of the given kind advances this goal
// type, and the delta to add. Focus goals are tracked in hours.
func Matches(gt GoalType, action string, minutes int, amount float64, txType string) (float64, bool) {
	switch gt {
	case TypeTasks:
		if action == "task_complete" {
			return 1, true
		}
	case TypeIncome:
		if action == "transaction" && txType == "income" {
			return amount, true
		}
	case TypeHabits:
		if action == "habit_complete" {
			return 1, true
		}
	case TypeFocusHours:
		if action == "focus_session" {
			return float64(minutes) / 60, true
		}
	}
	return 0, false
}
