package achievement

import "testing"

func codes(defs []Definition) map[string]bool {
	set := make(map[string]bool, len(defs))
	for _, d := range defs {
		set[d.Code] = true
	}
	return set
}

func TestEvaluateTaskThresholds(t *testing.T) {
	newly := Evaluate(Metrics{TasksCompleted: 10}, nil)
	got := codes(newly)

	if !got["first_task"] || !got["task_10"] {
		t.Errorf("expected first_task and task_10 at 10 tasks, got %v", got)
	}
	if got["task_50"] {
		t.Error("task_50 must not unlock at 10 tasks")
	}

	newly = Evaluate(Metrics{TasksCompleted: 50}, nil)
	got = codes(newly)
	if !got["task_10"] || !got["task_50"] {
		t.Errorf("expected task_10 and task_50 at 50 tasks, got %v", got)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	m := Metrics{TasksCompleted: 120, TotalIncome: 2500, BestHabitStreak: 30, HabitsCompleted: 80}

	first := Evaluate(m, nil)
	if len(first) == 0 {
		t.Fatal("expected unlocks on first evaluation")
	}

	second := Evaluate(m, codes(first))
	if len(second) != 0 {
		t.Errorf("second evaluation must return nothing new, got %v", codes(second))
	}
}

func TestEvaluateSkipsAlreadyUnlocked(t *testing.T) {
	unlocked := map[string]bool{"first_task": true}

	newly := Evaluate(Metrics{TasksCompleted: 1}, unlocked)
	if len(newly) != 0 {
		t.Errorf("expected no unlocks, got %v", codes(newly))
	}
}

func TestEvaluateSpecialPredicates(t *testing.T) {
	m := Metrics{EarlyTasks: 1, NightTasks: 1, WeekendTasks: 9}

	got := codes(Evaluate(m, nil))
	if !got["early_bird"] || !got["night_owl"] {
		t.Errorf("expected early_bird and night_owl, got %v", got)
	}
	if got["weekend_warrior"] {
		t.Error("weekend_warrior requires 10 weekend tasks, unlocked at 9")
	}
}

func TestCatalogCodesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Catalog {
		if seen[d.Code] {
			t.Errorf("duplicate catalog code %q", d.Code)
		}
		seen[d.Code] = true

		if d.RequirementValue <= 0 {
			t.Errorf("%s has non-positive requirement value", d.Code)
		}
		if d.Points <= 0 {
			t.Errorf("%s has non-positive point value", d.Code)
		}
	}
}

func TestEveryRequirementTypeDispatches(t *testing.T) {
	// A definition of every shipped requirement type must be satisfiable by
	// some metrics; an unmapped type would silently never unlock.
	big := Metrics{
		TasksCompleted:  1 << 20,
		TotalIncome:     1e9,
		BestHabitStreak: 1 << 20,
		HabitsCompleted: 1 << 20,
		EarlyTasks:      1 << 20,
		NightTasks:      1 << 20,
		WeekendTasks:    1 << 20,
	}

	for _, d := range Catalog {
		if !d.Satisfied(big) {
			t.Errorf("%s (%s) is unsatisfiable", d.Code, d.RequirementType)
		}
	}
}
