package challenge

// Template is a blueprint a day's challenge is minted from.
type Template struct {
	Title        string
	Description  string
	Type         ChallengeType
	TargetValue  int
	PointsReward int
}

// Templates is the shipped challenge pool. One template is picked per
// calendar day, deterministically, so every user sees the same challenge.
var Templates = []Template{
	// Productivity
	{Title: "Power Trio", Description: "Complete 3 high-priority tasks today.", Type: TypeTasks, TargetValue: 3, PointsReward: 50},
	{Title: "Task Crusher", Description: "Complete 5 tasks to dominate the day.", Type: TypeTasks, TargetValue: 5, PointsReward: 75},
	{Title: "Clear the Decks", Description: "Complete 8 tasks. Empty that backlog!", Type: TypeTasks, TargetValue: 8, PointsReward: 120},
	{Title: "Single Focus", Description: "Complete 1 major task (High Priority).", Type: TypeTasks, TargetValue: 1, PointsReward: 40},
	{Title: "Morning Momentum", Description: "Complete a task before 10 AM.", Type: TypeEarlyTask, TargetValue: 1, PointsReward: 45},
	{Title: "Quick Wins", Description: "Complete 3 quick/low priority tasks.", Type: TypeTasks, TargetValue: 3, PointsReward: 35},
	{Title: "Weekend Warrior", Description: "Complete 5 tasks over the weekend.", Type: TypeTasks, TargetValue: 5, PointsReward: 60},
	{Title: "Review Day", Description: "Clear out your 'Review' column tasks.", Type: TypeTasks, TargetValue: 2, PointsReward: 40},
	{Title: "Inbox Zero", Description: "Process and organize 5 backlog ideas.", Type: TypeTasks, TargetValue: 5, PointsReward: 50},
	{Title: "Project Finisher", Description: "Mark a major project/collection as Done.", Type: TypeTasks, TargetValue: 1, PointsReward: 100},

	// Focus
	{Title: "Deep Dive", Description: "Log 60 minutes of uninterrupted focus.", Type: TypeFocus, TargetValue: 60, PointsReward: 50},
	{Title: "Focus Master", Description: "Log 2 hours (120 min) of pure focus.", Type: TypeFocus, TargetValue: 120, PointsReward: 80},
	{Title: "Flow State", Description: "Complete 4 focus sessions today.", Type: TypeFocus, TargetValue: 4, PointsReward: 70},
	{Title: "The Marathon", Description: "Log 4 hours of focus today. You beast!", Type: TypeFocus, TargetValue: 240, PointsReward: 150},
	{Title: "Pomodoro Pro", Description: "Complete 3 Pomodoro sessions (25m each).", Type: TypeFocus, TargetValue: 75, PointsReward: 55},
	{Title: "Zen Mode", Description: "Log 30 minutes of focus before noon.", Type: TypeFocus, TargetValue: 30, PointsReward: 40},
	{Title: "Evening Grind", Description: "Log 60 minutes of focus after 6 PM.", Type: TypeFocus, TargetValue: 60, PointsReward: 60},
	{Title: "Short Burst", Description: "Complete a 15-minute intense focus sprint.", Type: TypeFocus, TargetValue: 15, PointsReward: 20},
	{Title: "Focus Streak", Description: "Hit your daily focus target 2 days in a row.", Type: TypeFocus, TargetValue: 1, PointsReward: 50},
	{Title: "Distraction Free", Description: "Log a 90-minute session without pauses.", Type: TypeFocus, TargetValue: 90, PointsReward: 100},

	// Habits
	{Title: "Habit Hero", Description: "Complete 3 different habits today.", Type: TypeHabits, TargetValue: 3, PointsReward: 50},
	{Title: "Perfect Day", Description: "Complete ALL your active habits.", Type: TypeHabits, TargetValue: 5, PointsReward: 100},
	{Title: "Streak Keeper", Description: "Extend a habit streak today.", Type: TypeHabits, TargetValue: 1, PointsReward: 30},
	{Title: "New Routine", Description: "Complete a newly created habit.", Type: TypeHabits, TargetValue: 1, PointsReward: 40},
	{Title: "Consistency King", Description: "Complete 5 habits today.", Type: TypeHabits, TargetValue: 5, PointsReward: 80},
	{Title: "Health Check", Description: "Complete a health-related habit.", Type: TypeHabits, TargetValue: 1, PointsReward: 35},
	{Title: "Learning Log", Description: "Complete a learning/skill habit.", Type: TypeHabits, TargetValue: 1, PointsReward: 35},
	{Title: "Mindfulness", Description: "Complete a meditation or reflection habit.", Type: TypeHabits, TargetValue: 1, PointsReward: 35},
	{Title: "Fitness First", Description: "Complete a workout habit early in the day.", Type: TypeHabits, TargetValue: 1, PointsReward: 45},
	{Title: "Double Trouble", Description: "Complete 2 habits before lunch.", Type: TypeHabits, TargetValue: 2, PointsReward: 50},

	// Finance
	{Title: "Money Maker", Description: "Log an income transaction today.", Type: TypeIncome, TargetValue: 1, PointsReward: 60},
	{Title: "Expense Tracker", Description: "Log 3 expense transactions. Track every cent!", Type: TypeFinance, TargetValue: 3, PointsReward: 40},
	{Title: "Savings Goal", Description: "Add money to a Goal tracker.", Type: TypeFinance, TargetValue: 1, PointsReward: 50},
	{Title: "Budget Boss", Description: "Review your finances and log a transaction.", Type: TypeFinance, TargetValue: 1, PointsReward: 30},
	{Title: "High Roller", Description: "Log an income over $100.", Type: TypeIncome, TargetValue: 1, PointsReward: 100},
	{Title: "Frugal Day", Description: "Log 0 expenses today (Manual check).", Type: TypeFinance, TargetValue: 1, PointsReward: 80},
	{Title: "Investment", Description: "Log an 'Investment' category transaction.", Type: TypeFinance, TargetValue: 1, PointsReward: 70},
	{Title: "Side Hustle", Description: "Log income from a 'Side Hustle' category.", Type: TypeIncome, TargetValue: 1, PointsReward: 90},
	{Title: "Audit", Description: "Update a Transaction category or note.", Type: TypeFinance, TargetValue: 1, PointsReward: 20},
	{Title: "Goal Crusher", Description: "Reach 50% on any financial goal.", Type: TypeFinance, TargetValue: 1, PointsReward: 120},

	// Lifestyle & misc
	{Title: "Early Riser", Description: "Open the app before 8 AM.", Type: TypeLogin, TargetValue: 1, PointsReward: 30},
	{Title: "Night Shift", Description: "Log activity after 10 PM.", Type: TypeLogin, TargetValue: 1, PointsReward: 40},
	{Title: "Weekend Prep", Description: "Create 3 tasks on a Friday.", Type: TypePlanning, TargetValue: 3, PointsReward: 45},
	{Title: "Weekly Planner", Description: "Create 5 tasks on a Monday.", Type: TypePlanning, TargetValue: 5, PointsReward: 50},
	{Title: "Social Butterfly", Description: "Share an achievement (Mock).", Type: TypeSocial, TargetValue: 1, PointsReward: 30},
	{Title: "Clean Slate", Description: "Complete all overdue tasks.", Type: TypeCleanup, TargetValue: 1, PointsReward: 150},
	{Title: "Idea Machine", Description: "Create 3 new ideas in the backlog.", Type: TypeCreation, TargetValue: 3, PointsReward: 45},
	{Title: "Tag Master", Description: "Add tags to 3 different tasks.", Type: TypeOrganization, TargetValue: 3, PointsReward: 30},
	{Title: "Descriptionist", Description: "Add detailed descriptions to 2 tasks.", Type: TypeOrganization, TargetValue: 2, PointsReward: 40},
	{Title: "Full House", Description: "Log a Task, a Habit, and a Transaction today.", Type: TypeCombo, TargetValue: 3, PointsReward: 200},
}
