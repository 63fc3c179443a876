package habit

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStreaksDailyWithGap(t *testing.T) {
	// Completed days 1,2,3, skipped day 4, completed day 5. Evaluated on
	// day 5 the current streak is just day 5, but the best streak keeps
	// the earlier 3-day run.
	completions := []time.Time{
		date(2026, time.March, 1),
		date(2026, time.March, 2),
		date(2026, time.March, 3),
		date(2026, time.March, 5),
	}

	current, best := ComputeStreaks(completions, date(2026, time.March, 5), FrequencyDaily, nil)
	if current != 1 {
		t.Errorf("expected current streak 1, got %d", current)
	}
	if best != 3 {
		t.Errorf("expected best streak 3, got %d", best)
	}
}

func TestComputeStreaksConsecutiveRun(t *testing.T) {
	completions := []time.Time{
		date(2026, time.March, 1),
		date(2026, time.March, 2),
		date(2026, time.March, 3),
	}

	current, best := ComputeStreaks(completions, date(2026, time.March, 3), FrequencyDaily, nil)
	if current != 3 || best != 3 {
		t.Errorf("expected 3/3, got %d/%d", current, best)
	}
}

func TestComputeStreaksGraceForToday(t *testing.T) {
	// Run ended yesterday and today is not yet completed: the streak
	// survives until today's window passes.
	completions := []time.Time{
		date(2026, time.March, 1),
		date(2026, time.March, 2),
	}

	current, _ := ComputeStreaks(completions, date(2026, time.March, 3), FrequencyDaily, nil)
	if current != 2 {
		t.Errorf("expected current streak 2 with grace day, got %d", current)
	}

	// Two days without a completion breaks it.
	current, _ = ComputeStreaks(completions, date(2026, time.March, 4), FrequencyDaily, nil)
	if current != 0 {
		t.Errorf("expected broken streak, got %d", current)
	}
}

func TestComputeStreaksEmptyHistory(t *testing.T) {
	current, best := ComputeStreaks(nil, date(2026, time.March, 3), FrequencyDaily, nil)
	if current != 0 || best != 0 {
		t.Errorf("expected 0/0 for empty history, got %d/%d", current, best)
	}
}

func TestComputeStreaksDuplicateDatesCollapse(t *testing.T) {
	// The same day marked at different times of day is one completion.
	completions := []time.Time{
		time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 2, 22, 0, 0, 0, time.UTC),
		date(2026, time.March, 3),
	}

	current, best := ComputeStreaks(completions, date(2026, time.March, 3), FrequencyDaily, nil)
	if current != 2 || best != 2 {
		t.Errorf("expected 2/2, got %d/%d", current, best)
	}
}

func TestComputeStreaksCustomTargetDays(t *testing.T) {
	// Mon/Wed/Fri habit. 2026-03-02 is a Monday.
	mon := date(2026, time.March, 2)
	wed := date(2026, time.March, 4)
	fri := date(2026, time.March, 6)
	targetDays := []int{1, 3, 5}

	// All three qualifying days completed: streak of 3 evaluated on Friday.
	current, best := ComputeStreaks([]time.Time{mon, wed, fri}, fri, FrequencyCustom, targetDays)
	if current != 3 || best != 3 {
		t.Errorf("expected 3/3 across qualifying days, got %d/%d", current, best)
	}

	// Saturday and Sunday are not qualifying days, so the streak holds
	// through the weekend.
	sun := date(2026, time.March, 8)
	current, _ = ComputeStreaks([]time.Time{mon, wed, fri}, sun, FrequencyCustom, targetDays)
	if current != 3 {
		t.Errorf("expected streak to hold over non-target days, got %d", current)
	}

	// Missing Wednesday breaks the run even though Tue/Thu were free.
	current, best = ComputeStreaks([]time.Time{mon, fri}, fri, FrequencyCustom, targetDays)
	if current != 1 {
		t.Errorf("expected current streak 1 after missed target day, got %d", current)
	}
	if best != 1 {
		t.Errorf("expected best streak 1, got %d", best)
	}
}

func TestComputeStreaksBackfillEvaluatesFromToday(t *testing.T) {
	today := date(2026, time.March, 10)

	// Only an old backfilled completion: no current streak as of today.
	current, best := ComputeStreaks([]time.Time{date(2026, time.March, 1)}, today, FrequencyDaily, nil)
	if current != 0 {
		t.Errorf("backfilled past date should not start a current streak, got %d", current)
	}
	if best != 1 {
		t.Errorf("expected best streak 1, got %d", best)
	}

	// Backfilling the missing middle day joins two runs into one.
	completions := []time.Time{
		date(2026, time.March, 8),
		date(2026, time.March, 10),
	}
	current, _ = ComputeStreaks(completions, today, FrequencyDaily, nil)
	if current != 1 {
		t.Errorf("expected 1 before backfill, got %d", current)
	}

	completions = append(completions, date(2026, time.March, 9))
	current, _ = ComputeStreaks(completions, today, FrequencyDaily, nil)
	if current != 3 {
		t.Errorf("expected 3 after backfill, got %d", current)
	}
}

func TestComputeStreaksInvariantCurrentLEBest(t *testing.T) {
	histories := [][]time.Time{
		nil,
		{date(2026, time.March, 1)},
		{date(2026, time.March, 1), date(2026, time.March, 2), date(2026, time.March, 5)},
		{date(2026, time.March, 3), date(2026, time.March, 4), date(2026, time.March, 5)},
	}

	for _, h := range histories {
		current, best := ComputeStreaks(h, date(2026, time.March, 5), FrequencyDaily, nil)
		if current > best {
			t.Errorf("current streak %d exceeds best %d for history %v", current, best, h)
		}
	}
}
