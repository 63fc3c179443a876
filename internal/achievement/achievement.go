package achievement

import (
	"time"

	"github.com/google/uuid"
)

// RequirementType is the closed set of conditions an achievement can test.
// Adding a variant here requires a matching case in Definition.Satisfied.
type RequirementType string

const (
	RequirementTasksCompleted  RequirementType = "tasks_completed"
	RequirementTotalIncome     RequirementType = "total_income"
	RequirementHabitStreak     RequirementType = "habit_streak"
	RequirementHabitsCompleted RequirementType = "habits_completed"
	RequirementEarlyTask       RequirementType = "early_task"
	RequirementNightTask       RequirementType = "night_task"
	RequirementWeekendTasks    RequirementType = "weekend_tasks"
)

type Category string

const (
	CategoryTasks   Category = "tasks"
	CategoryFinance Category = "finance"
	CategoryHabits  Category = "habits"
	CategoryStreak  Category = "streak"
	CategorySpecial Category = "special"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Definition is one entry of the static achievement catalog. Definitions are
// immutable at runtime; the catalog is the single source of truth for unlock
// rules.
type Definition struct {
	Code             string          `json:"code"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Icon             string          `json:"icon"`
	Category         Category        `json:"category"`
	RequirementType  RequirementType `json:"requirement_type"`
	RequirementValue int             `json:"requirement_value"`
	Points           int             `json:"points"`
	Rarity           Rarity          `json:"rarity"`
}

// UserAchievement records that a user unlocked a definition. Unlocking is a
// one-time, irreversible transition; only the Notified flag ever changes
// afterwards.
type UserAchievement struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Code       string    `json:"code" db:"code"`
	UnlockedAt time.Time `json:"unlocked_at" db:"unlocked_at"`
	Notified   bool      `json:"notified" db:"notified"`
}

type DefinitionWithStatus struct {
	Definition
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}
