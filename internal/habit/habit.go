package habit

import (
	"time"

	"github.com/google/uuid"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

type Habit struct {
	ID               uuid.UUID `json:"id" db:"id"`
	UserID           uuid.UUID `json:"user_id" db:"user_id"`
	Title            string    `json:"title" db:"title"`
	Description      *string   `json:"description" db:"description"`
	Icon             string    `json:"icon" db:"icon"`
	Color            string    `json:"color" db:"color"`
	Frequency        Frequency `json:"frequency" db:"frequency"`
	TargetDays       []int     `json:"target_days" db:"target_days"` // 0-6, Sunday first
	CurrentStreak    int       `json:"current_streak" db:"current_streak"`
	BestStreak       int       `json:"best_streak" db:"best_streak"`
	TotalCompletions int       `json:"total_completions" db:"total_completions"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Completion records one day a habit was performed. At most one row exists
// per (habit, date); re-marking the same day is a no-op, not a second row.
type Completion struct {
	ID            uuid.UUID `json:"id" db:"id"`
	HabitID       uuid.UUID `json:"habit_id" db:"habit_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	CompletedDate time.Time `json:"completed_date" db:"completed_date"`
	Note          *string   `json:"note,omitempty" db:"note"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type CreateHabitRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description *string   `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Frequency   Frequency `json:"frequency"`
	TargetDays  []int     `json:"target_days"`
}

type UpdateHabitRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Icon        *string    `json:"icon,omitempty"`
	Color       *string    `json:"color,omitempty"`
	Frequency   *Frequency `json:"frequency,omitempty"`
	TargetDays  []int      `json:"target_days,omitempty"`
}

type CompleteHabitRequest struct {
	Date string  `json:"date"` // YYYY-MM-DD, defaults to today
	Note *string `json:"note,omitempty"`
}
