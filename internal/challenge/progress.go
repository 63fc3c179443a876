package challenge

import (
	"errors"
	"time"
)

var ErrInvalidTarget = errors.New("challenge target must be positive")

// ApplyProgress sets the progress counter on a record and latches completion
// when the target is crossed. An already-completed record is returned
// unchanged (latched is false), so retried updates stay idempotent. Negative
// values are invalid input, never a latch release.
//
// The returned record carries progress and completion together; the caller
// must persist both fields in a single write so no reader ever observes a
// completed record whose progress sits below the target.
func ApplyProgress(rec UserChallenge, newValue, target int, now time.Time) (UserChallenge, bool, error) {
	if target <= 0 {
		return rec, false, ErrInvalidTarget
	}
	if newValue < 0 {
		return rec, false, errors.New("progress cannot be negative")
	}
	if rec.IsCompleted {
		return rec, false, nil
	}

	rec.CurrentProgress = newValue
	if newValue >= target {
		rec.IsCompleted = true
		rec.CompletedAt = &now
		return rec, true, nil
	}
	return rec, false, nil
}

// Complete is the explicit manual-completion path, used when the final
// increment is reported through a separate call. Same latch: completing an
// already-completed record is a no-op.
func Complete(rec UserChallenge, now time.Time) (UserChallenge, bool) {
	if rec.IsCompleted {
		return rec, false
	}
	rec.IsCompleted = true
	rec.CompletedAt = &now
	return rec, true
}

// Increment resolves how much an activity advances a challenge of the given
// type, returning false when the action is unrelated. Focus sessions advance
// focus challenges by their minute count; everything else counts by one.
// Income challenges only move on income transactions; plain finance
// challenges accept any transaction.
func Increment(ct ChallengeType, action ActionType, minutes int, txType string) (int, bool) {
	switch ct {
	case TypeTasks, TypeEarlyTask, TypeCleanup, TypeOrganization:
		if action == ActionTaskComplete {
			return 1, true
		}
	case TypeFocus:
		if action == ActionFocusSession {
			return minutes, true
		}
	case TypeFinance:
		if action == ActionTransaction {
			return 1, true
		}
	case TypeIncome:
		if action == ActionTransaction && txType == "income" {
			return 1, true
		}
	case TypeHabits:
		if action == ActionHabitComplete {
			return 1, true
		}
	case TypeLogin:
		if action == ActionLogin {
			return 1, true
		}
	case TypeCombo:
		switch action {
		case ActionTaskComplete, ActionHabitComplete, ActionTransaction:
			return 1, true
		}
	}
	return 0, false
}
