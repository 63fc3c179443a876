package achievement

// Catalog is the shipped achievement set, ordered by category then threshold.
var Catalog = []Definition{
	// Tasks
	{Code: "first_task", Title: "First Step", Description: "Complete your first task", Icon: "🎯", Category: CategoryTasks, RequirementType: RequirementTasksCompleted, RequirementValue: 1, Points: 10, Rarity: RarityCommon},
	{Code: "task_10", Title: "Getting Started", Description: "Complete 10 tasks", Icon: "📝", Category: CategoryTasks, RequirementType: RequirementTasksCompleted, RequirementValue: 10, Points: 25, Rarity: RarityCommon},
	{Code: "task_50", Title: "Task Master", Description: "Complete 50 tasks", Icon: "⭐", Category: CategoryTasks, RequirementType: RequirementTasksCompleted, RequirementValue: 50, Points: 50, Rarity: RarityRare},
	{Code: "task_100", Title: "Centurion", Description: "Complete 100 tasks", Icon: "🏆", Category: CategoryTasks, RequirementType: RequirementTasksCompleted, RequirementValue: 100, Points: 100, Rarity: RarityEpic},
	{Code: "task_500", Title: "Legendary Hustler", Description: "Complete 500 tasks", Icon: "👑", Category: CategoryTasks, RequirementType: RequirementTasksCompleted, RequirementValue: 500, Points: 250, Rarity: RarityLegendary},

	// Finance
	{Code: "first_income", Title: "First Dollar", Description: "Record your first income", Icon: "💵", Category: CategoryFinance, RequirementType: RequirementTotalIncome, RequirementValue: 1, Points: 15, Rarity: RarityCommon},
	{Code: "income_1000", Title: "Thousand Club", Description: "Earn $1,000 total", Icon: "💰", Category: CategoryFinance, RequirementType: RequirementTotalIncome, RequirementValue: 1000, Points: 50, Rarity: RarityRare},
	{Code: "income_10000", Title: "Five Figure Hustle", Description: "Earn $10,000 total", Icon: "💎", Category: CategoryFinance, RequirementType: RequirementTotalIncome, RequirementValue: 10000, Points: 150, Rarity: RarityEpic},
	{Code: "income_100000", Title: "Empire Builder", Description: "Earn $100,000 total", Icon: "🏰", Category: CategoryFinance, RequirementType: RequirementTotalIncome, RequirementValue: 100000, Points: 500, Rarity: RarityLegendary},

	// Habits & streaks
	{Code: "first_habit", Title: "Habit Starter", Description: "Complete a habit for the first time", Icon: "🌱", Category: CategoryHabits, RequirementType: RequirementHabitsCompleted, RequirementValue: 1, Points: 10, Rarity: RarityCommon},
	{Code: "habit_7_streak", Title: "Week Warrior", Description: "Maintain a 7-day habit streak", Icon: "🔥", Category: CategoryStreak, RequirementType: RequirementHabitStreak, RequirementValue: 7, Points: 30, Rarity: RarityCommon},
	{Code: "habit_30_streak", Title: "Month Master", Description: "Maintain a 30-day habit streak", Icon: "🔥", Category: CategoryStreak, RequirementType: RequirementHabitStreak, RequirementValue: 30, Points: 75, Rarity: RarityRare},
	{Code: "habit_100_streak", Title: "Consistency King", Description: "Maintain a 100-day habit streak", Icon: "👑", Category: CategoryStreak, RequirementType: RequirementHabitStreak, RequirementValue: 100, Points: 200, Rarity: RarityEpic},
	{Code: "habit_365_streak", Title: "Year of Discipline", Description: "Maintain a 365-day habit streak", Icon: "🌟", Category: CategoryStreak, RequirementType: RequirementHabitStreak, RequirementValue: 365, Points: 500, Rarity: RarityLegendary},

	// Special
	{Code: "early_bird", Title: "Early Bird", Description: "Complete a task before 6 AM", Icon: "🌅", Category: CategorySpecial, RequirementType: RequirementEarlyTask, RequirementValue: 1, Points: 25, Rarity: RarityRare},
	{Code: "night_owl", Title: "Night Owl", Description: "Complete a task after midnight", Icon: "🦉", Category: CategorySpecial, RequirementType: RequirementNightTask, RequirementValue: 1, Points: 25, Rarity: RarityRare},
	{Code: "weekend_warrior", Title: "Weekend Warrior", Description: "Complete 10 tasks on weekends", Icon: "💪", Category: CategorySpecial, RequirementType: RequirementWeekendTasks, RequirementValue: 10, Points: 40, Rarity: RarityRare},
}

// ByCode looks up a catalog definition.
func ByCode(code string) (Definition, bool) {
	for _, d := range Catalog {
		if d.Code == code {
			return d, true
		}
	}
	return Definition{}, false
}
