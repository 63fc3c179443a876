package challenge

import (
	"time"

	"github.com/google/uuid"
)

type ChallengeType string

const (
	TypeTasks        ChallengeType = "tasks"
	TypeEarlyTask    ChallengeType = "early_task"
	TypeFocus        ChallengeType = "focus"
	TypeHabits       ChallengeType = "habits"
	TypeFinance      ChallengeType = "finance"
	TypeIncome       ChallengeType = "income"
	TypeLogin        ChallengeType = "login"
	TypePlanning     ChallengeType = "planning"
	TypeSocial       ChallengeType = "social"
	TypeCleanup      ChallengeType = "cleanup"
	TypeCreation     ChallengeType = "creation"
	TypeOrganization ChallengeType = "organization"
	TypeCombo        ChallengeType = "combo"
)

// ActionType identifies a raw user action reported by the activity hooks.
type ActionType string

const (
	ActionTaskComplete  ActionType = "task_complete"
	ActionFocusSession  ActionType = "focus_session"
	ActionTransaction   ActionType = "transaction"
	ActionHabitComplete ActionType = "habit_complete"
	ActionLogin         ActionType = "login"
)

// DailyChallenge is one challenge instance, unique per (date, title). All
// users who get assigned the same day's challenge share the instance.
type DailyChallenge struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	Date          time.Time     `json:"date" db:"date"`
	Title         string        `json:"title" db:"title"`
	Description   string        `json:"description" db:"description"`
	ChallengeType ChallengeType `json:"challenge_type" db:"challenge_type"`
	TargetValue   int           `json:"target_value" db:"target_value"`
	PointsReward  int           `json:"points_reward" db:"points_reward"`
	IsActive      bool          `json:"is_active" db:"is_active"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// UserChallenge tracks one user's progress on a challenge. IsCompleted is a
// one-way latch: once set, progress updates are no-ops.
type UserChallenge struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	UserID          uuid.UUID  `json:"user_id" db:"user_id"`
	ChallengeID     uuid.UUID  `json:"challenge_id" db:"challenge_id"`
	CurrentProgress int        `json:"current_progress" db:"current_progress"`
	IsCompleted     bool       `json:"is_completed" db:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at" db:"completed_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

type UserChallengeResponse struct {
	Challenge DailyChallenge `json:"challenge"`
	Progress  UserChallenge  `json:"progress"`
}

type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}
