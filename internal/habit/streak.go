package habit

import "time"

// Day truncates t to calendar-day granularity in UTC. Completion dates are
// stored and compared at this granularity only.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeStreaks derives the current and longest consecutive-period streaks
// from a habit's completion history, evaluated as of today. The current
// streak walks backward from the most recent qualifying day; today itself is
// granted a grace period, so an unbroken run ending yesterday still counts
// until today's qualifying window has passed.
//
// For daily habits every calendar day qualifies. For weekly and custom
// habits only the habit's target weekdays qualify, and "consecutive" means
// consecutive qualifying days with no qualifying gap between them.
//
// Backfilled completions are handled naturally: the walk always starts from
// the present, so editing a past date can lengthen a run but never shifts
// the evaluation point.
func ComputeStreaks(completions []time.Time, today time.Time, freq Frequency, targetDays []int) (current, best int) {
	if len(completions) == 0 {
		return 0, 0
	}

	done := make(map[time.Time]bool, len(completions))
	var earliest time.Time
	for _, c := range completions {
		d := Day(c)
		done[d] = true
		if earliest.IsZero() || d.Before(earliest) {
			earliest = d
		}
	}

	qualifies := qualifier(freq, targetDays)

	// Current streak: find the most recent qualifying day on or before
	// today. If it has no completion yet, allow one grace period back.
	day := Day(today)
	for !qualifies(day) {
		day = day.AddDate(0, 0, -1)
	}
	if !done[day] {
		day = prevQualifying(day, qualifies)
	}
	for done[day] {
		current++
		day = prevQualifying(day, qualifies)
	}

	// Longest streak: scan every qualifying day from the earliest
	// completion to today and track the longest unbroken run.
	run := 0
	for d := earliest; !d.After(Day(today)); d = d.AddDate(0, 0, 1) {
		if !qualifies(d) {
			continue
		}
		if done[d] {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	if current > best {
		best = current
	}

	return current, best
}

func qualifier(freq Frequency, targetDays []int) func(time.Time) bool {
	if freq == FrequencyDaily || len(targetDays) == 0 {
		return func(time.Time) bool { return true }
	}

	target := make(map[time.Weekday]bool, len(targetDays))
	for _, d := range targetDays {
		if d >= 0 && d <= 6 {
			target[time.Weekday(d)] = true
		}
	}
	if len(target) == 0 {
		return func(time.Time) bool { return true }
	}
	return func(t time.Time) bool { return target[t.Weekday()] }
}

func prevQualifying(day time.Time, qualifies func(time.Time) bool) time.Time {
	day = day.AddDate(0, 0, -1)
	for !qualifies(day) {
		day = day.AddDate(0, 0, -1)
	}
	return day
}
