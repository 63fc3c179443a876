package goal

import (
	"testing"
	"time"
)

func TestWeekStartAnchorsToMonday(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		// 2026-03-02 is a Monday.
		{time.Date(2026, time.March, 2, 15, 30, 0, 0, time.UTC), time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, time.March, 8, 23, 59, 0, 0, time.UTC), time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)}, // Sunday
		{time.Date(2026, time.March, 9, 1, 0, 0, 0, time.UTC), time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)},   // next Monday
	}

	for _, c := range cases {
		if got := WeekStart(c.in); !got.Equal(c.want) {
			t.Errorf("WeekStart(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestApplyProgressLatchesOnTarget(t *testing.T) {
	g := WeeklyGoal{GoalType: TypeTasks, TargetValue: 10}

	g, completed, err := ApplyProgress(g, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completed || g.IsCompleted {
		t.Fatal("9/10 must not complete")
	}

	g, completed, err = ApplyProgress(g, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !completed || !g.IsCompleted {
		t.Fatal("10/10 must latch completion")
	}

	// The latch holds against later lower values.
	g, completed, err = ApplyProgress(g, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completed {
		t.Error("completed goal must not complete again")
	}
	if g.CurrentValue != 10 || !g.IsCompleted {
		t.Errorf("expected 10/true after no-op update, got %v/%v", g.CurrentValue, g.IsCompleted)
	}
}

func TestApplyProgressInvalidInput(t *testing.T) {
	if _, _, err := ApplyProgress(WeeklyGoal{TargetValue: 0}, 1); err == nil {
		t.Error("non-positive target must be rejected")
	}
	if _, _, err := ApplyProgress(WeeklyGoal{TargetValue: 5}, -1); err == nil {
		t.Error("negative progress must be rejected")
	}
}

func TestMatches(t *testing.T) {
	if delta, ok := Matches(TypeTasks, "task_complete", 0, 0, ""); !ok || delta != 1 {
		t.Errorf("task goal should advance by 1, got %v/%v", delta, ok)
	}
	if delta, ok := Matches(TypeIncome, "transaction", 0, 250, "income"); !ok || delta != 250 {
		t.Errorf("income goal should advance by amount, got %v/%v", delta, ok)
	}
	if _, ok := Matches(TypeIncome, "transaction", 0, 250, "expense"); ok {
		t.Error("expense must not advance an income goal")
	}
	if delta, ok := Matches(TypeFocusHours, "focus_session", 90, 0, ""); !ok || delta != 1.5 {
		t.Errorf("90 focus minutes should advance by 1.5 hours, got %v/%v", delta, ok)
	}
	if _, ok := Matches(TypeCustom, "task_complete", 0, 0, ""); ok {
		t.Error("custom goals only move by explicit updates")
	}
}
