package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hustleHQAPI/internal/calendar"
	"hustleHQAPI/internal/habit"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HabitService struct {
	db       *pgxpool.Pool
	activity *ActivityService
}

func NewHabitService(db *pgxpool.Pool, activity *ActivityService) *HabitService {
	return &HabitService{db: db, activity: activity}
}

const habitColumns = `id, user_id, title, description, icon, color, frequency, target_days, current_streak, best_streak, total_completions, is_active, created_at, updated_at`

func scanHabit(row pgx.Row) (*habit.Habit, error) {
	h := &habit.Habit{}
	err := row.Scan(
		&h.ID, &h.UserID, &h.Title, &h.Description, &h.Icon, &h.Color,
		&h.Frequency, &h.TargetDays, &h.CurrentStreak, &h.BestStreak,
		&h.TotalCompletions, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HabitService) CreateHabit(ctx context.Context, clerkID string, req *habit.CreateHabitRequest) (*habit.Habit, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	freq := req.Frequency
	if freq == "" {
		freq = habit.FrequencyDaily
	}
	for _, d := range req.TargetDays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("target day %d out of range", d)
		}
	}

	query := `
	INSERT INTO habits (id, user_id, title, description, icon, color, frequency, target_days, current_streak, best_streak, total_completions, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0, 0, true, NOW(), NOW())
	RETURNING ` + habitColumns

	h, err := scanHabit(s.db.QueryRow(ctx, query,
		uuid.New(), userID, req.Title, req.Description, req.Icon, req.Color, freq, req.TargetDays,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return h, nil
}

func (s *HabitService) GetHabits(ctx context.Context, clerkID string) ([]*habit.Habit, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+habitColumns+` FROM habits WHERE user_id = $1 AND is_active = true ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	habits := []*habit.Habit{}
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *HabitService) UpdateHabit(ctx context.Context, clerkID string, habitID uuid.UUID, req *habit.UpdateHabitRequest) (*habit.Habit, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	UPDATE habits
	SET title = COALESCE($3, title),
	    description = COALESCE($4, description),
	    icon = COALESCE($5, icon),
	    color = COALESCE($6, color),
	    frequency = COALESCE($7, frequency),
	    target_days = COALESCE($8, target_days),
	    updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING ` + habitColumns

	h, err := scanHabit(s.db.QueryRow(ctx, query,
		habitID, userID, req.Title, req.Description, req.Icon, req.Color, req.Frequency, req.TargetDays,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("habit not found")
		}
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	// A frequency or schedule change shifts which days qualify, so the
	// streaks are recomputed from history right away.
	if req.Frequency != nil || req.TargetDays != nil {
		if h, err = s.recomputeStreaks(ctx, h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// DeleteHabit soft-deletes so completion history survives for aggregates.
func (s *HabitService) DeleteHabit(ctx context.Context, clerkID string, habitID uuid.UUID) error {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(ctx,
		`UPDATE habits SET is_active = false, updated_at = NOW() WHERE id = $1 AND user_id = $2`, habitID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("habit not found")
	}
	return nil
}

// CompleteHabit marks a habit done for a date (today when omitted, past
// dates allowed for backfill). Marking an already-done day is a no-op that
// still returns the current state, so double-taps never double count.
func (s *HabitService) CompleteHabit(ctx context.Context, clerkID string, habitID uuid.UUID, req *habit.CompleteHabitRequest) (*habit.Habit, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	date := habit.Day(time.Now().UTC())
	if req != nil && req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
		}
		date = habit.Day(parsed)
	}
	if date.After(habit.Day(time.Now().UTC())) {
		return nil, fmt.Errorf("cannot complete a habit in the future")
	}

	h, err := s.getOwnedHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	var note *string
	if req != nil {
		note = req.Note
	}
	result, err := s.db.Exec(ctx, `
	INSERT INTO habit_completions (id, habit_id, user_id, completed_date, note, created_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	ON CONFLICT (habit_id, completed_date) DO NOTHING
	`, uuid.New(), habitID, userID, date, note)
	if err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return h, nil
	}

	h, err = s.recomputeStreaks(ctx, h)
	if err != nil {
		return nil, err
	}

	s.activity.RecordHabitCompletion(ctx, userID)
	return h, nil
}

// UncompleteHabit removes a day's completion and recomputes the streaks.
// The best streak never shrinks. Revoking a day that was never marked is a
// quiet no-op.
func (s *HabitService) UncompleteHabit(ctx context.Context, clerkID string, habitID uuid.UUID, dateStr string) (*habit.Habit, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	date := habit.Day(time.Now().UTC())
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", dateStr, err)
		}
		date = habit.Day(parsed)
	}

	h, err := s.getOwnedHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	result, err := s.db.Exec(ctx,
		`DELETE FROM habit_completions WHERE habit_id = $1 AND completed_date = $2`, habitID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to remove completion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return h, nil
	}

	return s.recomputeStreaks(ctx, h)
}

func (s *HabitService) getOwnedHabit(ctx context.Context, userID, habitID uuid.UUID) (*habit.Habit, error) {
	h, err := scanHabit(s.db.QueryRow(ctx,
		`SELECT `+habitColumns+` FROM habits WHERE id = $1 AND user_id = $2`, habitID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("habit not found")
		}
		return nil, fmt.Errorf("failed to load habit: %w", err)
	}
	return h, nil
}

// recomputeStreaks derives current and best streak from the full completion
// history and persists counters in a single write. GREATEST keeps the best
// streak monotonic even when history shrinks.
func (s *HabitService) recomputeStreaks(ctx context.Context, h *habit.Habit) (*habit.Habit, error) {
	rows, err := s.db.Query(ctx,
		`SELECT completed_date FROM habit_completions WHERE habit_id = $1 ORDER BY completed_date ASC`, h.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	var completions []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		completions = append(completions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read completions: %w", err)
	}

	current, best := habit.ComputeStreaks(completions, time.Now().UTC(), h.Frequency, h.TargetDays)

	query := `
	UPDATE habits
	SET current_streak = $2,
	    best_streak = GREATEST(best_streak, $3),
	    total_completions = $4,
	    updated_at = NOW()
	WHERE id = $1
	RETURNING ` + habitColumns

	return scanHabit(s.db.QueryRow(ctx, query, h.ID, current, best, len(completions)))
}

// GetCalendar returns the month grid for one habit: every day of the month
// with its completion flag.
func (s *HabitService) GetCalendar(ctx context.Context, clerkID string, habitID uuid.UUID, year, month int) (*calendar.Response, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d out of range", month)
	}

	if _, err := s.getOwnedHabit(ctx, userID, habitID); err != nil {
		return nil, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	rows, err := s.db.Query(ctx, `
	SELECT completed_date
	FROM habit_completions
	WHERE habit_id = $1 AND completed_date >= $2 AND completed_date <= $3
	`, habitID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar: %w", err)
	}
	defer rows.Close()

	done := make(map[time.Time]bool)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan calendar day: %w", err)
		}
		done[habit.Day(d)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read calendar: %w", err)
	}

	today := habit.Day(time.Now().UTC())
	resp := &calendar.Response{Year: year, Month: month}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		resp.Days = append(resp.Days, &calendar.Day{
			Date:      d,
			Completed: done[d],
			IsToday:   d.Equal(today),
		})
	}
	return resp, nil
}
