package score

// Weights convert raw activity counters into productivity score points.
// These are product policy numbers, not derived values: a completed task is
// worth TaskPoints, a habit completion HabitPoints, every FocusBlockMinutes
// of logged focus FocusBlockPoints, and every IncomeUnit dollars of income
// IncomePoints. Changing them rescales every user's score, so treat them as
// frozen unless the whole leaderboard is rescored.
type Weights struct {
	TaskPoints        int
	HabitPoints       int
	FocusBlockPoints  int
	FocusBlockMinutes int
	IncomePoints      int
	IncomeUnit        int
}

var DefaultWeights = Weights{
	TaskPoints:        10,
	HabitPoints:       5,
	FocusBlockPoints:  5,
	FocusBlockMinutes: 30,
	IncomePoints:      1,
	IncomeUnit:        100,
}

// Metrics are the aggregate counters the score is computed from.
type Metrics struct {
	TasksCompleted  int     `json:"tasks_completed"`
	TotalIncome     float64 `json:"total_income"`
	FocusMinutes    int     `json:"focus_minutes"`
	HabitsCompleted int     `json:"habits_completed"`
}

// Compute returns the productivity score for the given metrics. Pure and
// deterministic: same metrics, same score.
func (w Weights) Compute(m Metrics) int {
	s := m.TasksCompleted*w.TaskPoints + m.HabitsCompleted*w.HabitPoints

	if w.FocusBlockMinutes > 0 {
		s += (m.FocusMinutes / w.FocusBlockMinutes) * w.FocusBlockPoints
	}
	if w.IncomeUnit > 0 && m.TotalIncome > 0 {
		s += (int(m.TotalIncome) / w.IncomeUnit) * w.IncomePoints
	}

	return s
}

type HustleLevel struct {
	Name     string `json:"name"`
	MinScore int    `json:"min_score"`
}

// HustleLevels is ordered ascending by MinScore. Boundaries are inclusive on
// the lower bound: a score of exactly 2000 is Empire Builder.
var HustleLevels = []HustleLevel{
	{Name: "Newbie Hustler", MinScore: 0},
	{Name: "Side Hustler", MinScore: 200},
	{Name: "Grinder", MinScore: 500},
	{Name: "Boss Mode", MinScore: 1000},
	{Name: "Empire Builder", MinScore: 2000},
}

// ResolveHustleLevel maps a score to its tier name. Every score maps to
// exactly one tier; negative scores resolve to the lowest tier.
func ResolveHustleLevel(score int) string {
	level := HustleLevels[0].Name
	for _, l := range HustleLevels {
		if score >= l.MinScore {
			level = l.Name
		}
	}
	return level
}

// HustleLevelIndex returns the tier's position in HustleLevels, or -1 for an
// unknown name. Useful for comparing tiers without repeating the order.
func HustleLevelIndex(name string) int {
	for i, l := range HustleLevels {
		if l.Name == name {
			return i
		}
	}
	return -1
}
