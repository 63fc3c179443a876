package services

import (
	"testing"
	"time"
)

func TestTemplateForDateIsStableWithinADay(t *testing.T) {
	morning := time.Date(2026, 3, 14, 0, 0, 1, 0, time.UTC)
	night := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)

	if templateForDate(morning).Title != templateForDate(night).Title {
		t.Fatal("same calendar day picked different templates")
	}
}

func TestTemplateForDateRotates(t *testing.T) {
	day := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	if templateForDate(day).Title == templateForDate(next).Title {
		t.Fatal("consecutive days picked the same template")
	}
}

func TestCurrentWeekStartIsMonday(t *testing.T) {
	ws := currentWeekStart()
	if ws.Weekday() != time.Monday {
		t.Errorf("expected Monday anchor, got %s", ws.Weekday())
	}
	if !ws.Before(time.Now().UTC().Add(time.Second)) {
		t.Error("week start should not be in the future")
	}
}
