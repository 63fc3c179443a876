package challenge

import (
	"testing"
	"time"
)

func TestApplyProgressLatch(t *testing.T) {
	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	rec := UserChallenge{}

	rec, latched, err := ApplyProgress(rec, 9, 10, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latched || rec.IsCompleted {
		t.Fatalf("9/10 must not complete, got completed=%v", rec.IsCompleted)
	}
	if rec.CurrentProgress != 9 {
		t.Fatalf("expected progress 9, got %d", rec.CurrentProgress)
	}

	rec, latched, err = ApplyProgress(rec, 10, 10, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !latched || !rec.IsCompleted {
		t.Fatal("10/10 must latch completion")
	}
	if rec.CompletedAt == nil || !rec.CompletedAt.Equal(now) {
		t.Errorf("expected completed_at stamped as %v, got %v", now, rec.CompletedAt)
	}

	// Progress on a completed record is a no-op: value and latch both hold.
	after, latched, err := ApplyProgress(rec, 5, 10, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latched {
		t.Error("already-completed record must not latch again")
	}
	if after.CurrentProgress != 10 || !after.IsCompleted {
		t.Errorf("expected 10/true after no-op, got %d/%v", after.CurrentProgress, after.IsCompleted)
	}
}

func TestApplyProgressRejectsInvalidInput(t *testing.T) {
	now := time.Now()

	if _, _, err := ApplyProgress(UserChallenge{}, 1, 0, now); err == nil {
		t.Error("zero target must be rejected")
	}
	if _, _, err := ApplyProgress(UserChallenge{}, 1, -3, now); err == nil {
		t.Error("negative target must be rejected")
	}
	if _, _, err := ApplyProgress(UserChallenge{}, -1, 10, now); err == nil {
		t.Error("negative progress must be rejected")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

	rec, latched := Complete(UserChallenge{CurrentProgress: 4}, now)
	if !latched || !rec.IsCompleted {
		t.Fatal("expected manual completion to latch")
	}

	stamp := *rec.CompletedAt
	rec, latched = Complete(rec, now.Add(time.Hour))
	if latched {
		t.Error("second Complete must be a no-op")
	}
	if !rec.CompletedAt.Equal(stamp) {
		t.Error("completed_at must not move on repeat completion")
	}
}

func TestIncrementMatching(t *testing.T) {
	cases := []struct {
		ct     ChallengeType
		action ActionType
		min    int
		txType string
		want   int
		ok     bool
	}{
		{TypeTasks, ActionTaskComplete, 0, "", 1, true},
		{TypeTasks, ActionHabitComplete, 0, "", 0, false},
		{TypeFocus, ActionFocusSession, 45, "", 45, true},
		{TypeFocus, ActionTaskComplete, 0, "", 0, false},
		{TypeIncome, ActionTransaction, 0, "income", 1, true},
		{TypeIncome, ActionTransaction, 0, "expense", 0, false},
		{TypeFinance, ActionTransaction, 0, "expense", 1, true},
		{TypeHabits, ActionHabitComplete, 0, "", 1, true},
		{TypeCombo, ActionTaskComplete, 0, "", 1, true},
		{TypeCombo, ActionTransaction, 0, "expense", 1, true},
		{TypeCombo, ActionLogin, 0, "", 0, false},
		{TypeLogin, ActionLogin, 0, "", 1, true},
		{TypeSocial, ActionTaskComplete, 0, "", 0, false},
	}

	for _, c := range cases {
		got, ok := Increment(c.ct, c.action, c.min, c.txType)
		if got != c.want || ok != c.ok {
			t.Errorf("Increment(%s, %s) = (%d, %v), want (%d, %v)", c.ct, c.action, got, ok, c.want, c.ok)
		}
	}
}

func TestTemplatesAreSane(t *testing.T) {
	seen := make(map[string]bool)
	for _, tmpl := range Templates {
		if seen[tmpl.Title] {
			t.Errorf("duplicate template title %q", tmpl.Title)
		}
		seen[tmpl.Title] = true
		if tmpl.TargetValue <= 0 {
			t.Errorf("%q has non-positive target", tmpl.Title)
		}
		if tmpl.PointsReward <= 0 {
			t.Errorf("%q has non-positive reward", tmpl.Title)
		}
	}
}
