package stats

import (
	"time"

	"github.com/google/uuid"
)

// DailyStats is one user's activity tally for one calendar day. The per-day
// productivity score is recomputed from the day's counters on every write.
type DailyStats struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	Date              time.Time `json:"date" db:"date"`
	TasksCompleted    int       `json:"tasks_completed" db:"tasks_completed"`
	TasksCreated      int       `json:"tasks_created" db:"tasks_created"`
	FocusMinutes      int       `json:"focus_minutes" db:"focus_minutes"`
	Income            float64   `json:"income" db:"income"`
	Expense           float64   `json:"expense" db:"expense"`
	HabitsCompleted   int       `json:"habits_completed" db:"habits_completed"`
	ProductivityScore int       `json:"productivity_score" db:"productivity_score"`
}

// Update carries the deltas one activity adds to today's tally.
type Update struct {
	AddTasksCompleted  int
	AddTasksCreated    int
	AddFocusMinutes    int
	AddIncome          float64
	AddExpense         float64
	AddHabitsCompleted int
}

type UserStats struct {
	ProductivityScore int     `json:"productivity_score"`
	HustleLevel       string  `json:"hustle_level"`
	TasksCompleted    int     `json:"tasks_completed"`
	HabitsCompleted   int     `json:"habits_completed"`
	FocusMinutes      int     `json:"focus_minutes"`
	TotalIncome       float64 `json:"total_income"`
	BestHabitStreak   int     `json:"best_habit_streak"`
	AchievementsCount int     `json:"achievements_count"`
	Rank              int     `json:"rank"`
}

type ScorePoint struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

type Analytics struct {
	WeeklyProductivity   []ScorePoint `json:"weekly_productivity"`
	MonthlyProductivity  []ScorePoint `json:"monthly_productivity"`
	MostProductiveDay    string       `json:"most_productive_day"`
	AverageDailyScore    int          `json:"average_daily_score"`
	FocusMinutesThisWeek int          `json:"focus_minutes_this_week"`
}
