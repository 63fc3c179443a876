package services

import (
	"testing"
	"time"
)

func TestTaskFlagsEarlyBoundary(t *testing.T) {
	early, _, _ := taskFlags(time.Date(2025, 6, 4, 5, 59, 0, 0, time.UTC))
	if !early {
		t.Error("05:59 should count as early")
	}

	early, _, _ = taskFlags(time.Date(2025, 6, 4, 6, 0, 0, 0, time.UTC))
	if early {
		t.Error("06:00 should not count as early")
	}
}

func TestTaskFlagsNightBoundary(t *testing.T) {
	_, night, _ := taskFlags(time.Date(2025, 6, 4, 3, 59, 0, 0, time.UTC))
	if !night {
		t.Error("03:59 should count as night")
	}

	_, night, _ = taskFlags(time.Date(2025, 6, 4, 4, 0, 0, 0, time.UTC))
	if night {
		t.Error("04:00 should not count as night")
	}
}

func TestTaskFlagsWeekend(t *testing.T) {
	_, _, weekend := taskFlags(time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC))
	if !weekend {
		t.Error("Saturday should count as weekend")
	}

	_, _, weekend = taskFlags(time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC))
	if weekend {
		t.Error("Wednesday should not count as weekend")
	}
}
