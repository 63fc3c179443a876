package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hustleHQAPI/internal/score"
	"hustleHQAPI/internal/stats"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsService struct {
	db      *pgxpool.Pool
	weights score.Weights
}

func NewStatsService(db *pgxpool.Pool) *StatsService {
	return &StatsService{db: db, weights: score.DefaultWeights}
}

// RecordDaily folds an activity delta into today's tally and recomputes the
// day's productivity score from the resulting counters. The upsert keeps
// exactly one row per (user, day).
func (s *StatsService) RecordDaily(ctx context.Context, userID uuid.UUID, upd stats.Update) (*stats.DailyStats, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	query := `
	INSERT INTO daily_stats (id, user_id, date, tasks_completed, tasks_created, focus_minutes, income, expense, habits_completed, productivity_score)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0)
	ON CONFLICT (user_id, date) DO UPDATE SET
		tasks_completed = daily_stats.tasks_completed + EXCLUDED.tasks_completed,
		tasks_created = daily_stats.tasks_created + EXCLUDED.tasks_created,
		focus_minutes = daily_stats.focus_minutes + EXCLUDED.focus_minutes,
		income = daily_stats.income + EXCLUDED.income,
		expense = daily_stats.expense + EXCLUDED.expense,
		habits_completed = daily_stats.habits_completed + EXCLUDED.habits_completed
	RETURNING id, user_id, date, tasks_completed, tasks_created, focus_minutes, income, expense, habits_completed, productivity_score
	`

	d := &stats.DailyStats{}
	err := s.db.QueryRow(ctx, query,
		uuid.New(), userID, today,
		upd.AddTasksCompleted, upd.AddTasksCreated, upd.AddFocusMinutes,
		upd.AddIncome, upd.AddExpense, upd.AddHabitsCompleted,
	).Scan(
		&d.ID, &d.UserID, &d.Date, &d.TasksCompleted, &d.TasksCreated,
		&d.FocusMinutes, &d.Income, &d.Expense, &d.HabitsCompleted, &d.ProductivityScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record daily stats: %w", err)
	}

	d.ProductivityScore = s.weights.Compute(score.Metrics{
		TasksCompleted:  d.TasksCompleted,
		TotalIncome:     d.Income,
		FocusMinutes:    d.FocusMinutes,
		HabitsCompleted: d.HabitsCompleted,
	})

	_, err = s.db.Exec(ctx,
		`UPDATE daily_stats SET productivity_score = $2 WHERE id = $1`, d.ID, d.ProductivityScore)
	if err != nil {
		return nil, fmt.Errorf("failed to update day score: %w", err)
	}

	return d, nil
}

func (s *StatsService) GetToday(ctx context.Context, clerkID string) (*stats.DailyStats, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	d := &stats.DailyStats{}
	err = s.db.QueryRow(ctx, `
	SELECT id, user_id, date, tasks_completed, tasks_created, focus_minutes, income, expense, habits_completed, productivity_score
	FROM daily_stats
	WHERE user_id = $1 AND date = $2
	`, userID, today).Scan(
		&d.ID, &d.UserID, &d.Date, &d.TasksCompleted, &d.TasksCreated,
		&d.FocusMinutes, &d.Income, &d.Expense, &d.HabitsCompleted, &d.ProductivityScore,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &stats.DailyStats{UserID: userID, Date: today}, nil
		}
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	return d, nil
}

// GetUserStats assembles the profile-screen summary: lifetime counters,
// current score and tier, and leaderboard rank.
func (s *StatsService) GetUserStats(ctx context.Context, clerkID string) (*stats.UserStats, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	out := &stats.UserStats{}
	err = s.db.QueryRow(ctx, `
	SELECT productivity_score, hustle_level FROM profiles WHERE id = $1
	`, userID).Scan(&out.ProductivityScore, &out.HustleLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile stats: %w", err)
	}

	err = s.db.QueryRow(ctx, `
	SELECT
		COALESCE(SUM(tasks_completed), 0),
		COALESCE(SUM(habits_completed), 0),
		COALESCE(SUM(focus_minutes), 0),
		COALESCE(SUM(income), 0)
	FROM daily_stats
	WHERE user_id = $1
	`, userID).Scan(&out.TasksCompleted, &out.HabitsCompleted, &out.FocusMinutes, &out.TotalIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to sum daily stats: %w", err)
	}

	err = s.db.QueryRow(ctx, `
	SELECT COALESCE(MAX(best_streak), 0) FROM habits WHERE user_id = $1
	`, userID).Scan(&out.BestHabitStreak)
	if err != nil {
		return nil, fmt.Errorf("failed to load best streak: %w", err)
	}

	err = s.db.QueryRow(ctx, `
	SELECT COUNT(*) FROM user_achievements WHERE user_id = $1
	`, userID).Scan(&out.AchievementsCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count achievements: %w", err)
	}

	err = s.db.QueryRow(ctx, `
	SELECT COUNT(*) + 1
	FROM profiles
	WHERE productivity_score > (SELECT productivity_score FROM profiles WHERE id = $1)
	`, userID).Scan(&out.Rank)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rank: %w", err)
	}

	return out, nil
}

// GetAnalytics builds the productivity charts: 7- and 30-day score series,
// the strongest weekday, and this week's focus time.
func (s *StatsService) GetAnalytics(ctx context.Context, clerkID string) (*stats.Analytics, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	monthly, err := s.scoreSeries(ctx, userID, today.AddDate(0, 0, -29), today)
	if err != nil {
		return nil, err
	}

	a := &stats.Analytics{MonthlyProductivity: monthly}
	if len(monthly) >= 7 {
		a.WeeklyProductivity = monthly[len(monthly)-7:]
	} else {
		a.WeeklyProductivity = monthly
	}

	var total int
	byWeekday := make(map[time.Weekday]int)
	for _, p := range monthly {
		total += p.Score
		byWeekday[p.Date.Weekday()] += p.Score
	}
	if len(monthly) > 0 {
		a.AverageDailyScore = total / len(monthly)
	}
	best := -1
	for wd, sum := range byWeekday {
		if sum > best {
			best = sum
			a.MostProductiveDay = wd.String()
		}
	}

	weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	err = s.db.QueryRow(ctx, `
	SELECT COALESCE(SUM(focus_minutes), 0)
	FROM daily_stats
	WHERE user_id = $1 AND date >= $2
	`, userID, weekStart).Scan(&a.FocusMinutesThisWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to sum week focus: %w", err)
	}

	return a, nil
}

// scoreSeries returns one point per day of the range, zero-filled for days
// with no activity so charts have no gaps.
func (s *StatsService) scoreSeries(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]stats.ScorePoint, error) {
	rows, err := s.db.Query(ctx, `
	SELECT date, productivity_score
	FROM daily_stats
	WHERE user_id = $1 AND date >= $2 AND date <= $3
	ORDER BY date ASC
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query score series: %w", err)
	}
	defer rows.Close()

	byDay := make(map[time.Time]int)
	for rows.Next() {
		var date time.Time
		var dayScore int
		if err := rows.Scan(&date, &dayScore); err != nil {
			return nil, fmt.Errorf("failed to scan score point: %w", err)
		}
		byDay[date.UTC().Truncate(24*time.Hour)] = dayScore
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read score series: %w", err)
	}

	var series []stats.ScorePoint
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		series = append(series, stats.ScorePoint{Date: d, Score: byDay[d]})
	}
	return series, nil
}
