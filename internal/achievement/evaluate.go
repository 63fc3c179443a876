package achievement

// Metrics are the aggregate counters unlock rules are tested against. They
// are supplied by the caller from already-persisted aggregates; evaluation
// never recomputes them. The special-predicate counters (early/night/weekend
// tasks) are raw facts tallied by the activity log, not derived here.
type Metrics struct {
	TasksCompleted  int     `json:"tasks_completed"`
	TotalIncome     float64 `json:"total_income"`
	BestHabitStreak int     `json:"best_habit_streak"`
	HabitsCompleted int     `json:"habits_completed"`
	EarlyTasks      int     `json:"early_tasks"`
	NightTasks      int     `json:"night_tasks"`
	WeekendTasks    int     `json:"weekend_tasks"`
}

// Satisfied reports whether the metrics meet this definition's requirement.
func (d Definition) Satisfied(m Metrics) bool {
	switch d.RequirementType {
	case RequirementTasksCompleted:
		return m.TasksCompleted >= d.RequirementValue
	case RequirementTotalIncome:
		return m.TotalIncome >= float64(d.RequirementValue)
	case RequirementHabitStreak:
		return m.BestHabitStreak >= d.RequirementValue
	case RequirementHabitsCompleted:
		return m.HabitsCompleted >= d.RequirementValue
	case RequirementEarlyTask:
		return m.EarlyTasks >= d.RequirementValue
	case RequirementNightTask:
		return m.NightTasks >= d.RequirementValue
	case RequirementWeekendTasks:
		return m.WeekendTasks >= d.RequirementValue
	}
	return false
}

// Evaluate returns the catalog definitions that are newly satisfied, skipping
// codes already unlocked. It is a pure read: calling it again with the
// returned codes added to unlocked yields nothing, so it is always safe to
// re-run after a failed persist.
func Evaluate(m Metrics, unlocked map[string]bool) []Definition {
	var newly []Definition
	for _, d := range Catalog {
		if unlocked[d.Code] {
			continue
		}
		if d.Satisfied(m) {
			newly = append(newly, d)
		}
	}
	return newly
}
