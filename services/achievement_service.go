package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hustleHQAPI/internal/achievement"
	"hustleHQAPI/internal/notification"
	"hustleHQAPI/internal/profile"
	"hustleHQAPI/middleware"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AchievementService struct {
	db            *pgxpool.Pool
	profiles      *ProfileService
	notifications *NotificationService
}

func NewAchievementService(db *pgxpool.Pool, profiles *ProfileService, notifications *NotificationService) *AchievementService {
	return &AchievementService{db: db, profiles: profiles, notifications: notifications}
}

// GetAchievements returns the full catalog annotated with the user's unlock
// state, locked entries included.
func (s *AchievementService) GetAchievements(ctx context.Context, clerkID string) ([]*achievement.DefinitionWithStatus, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT code, unlocked_at FROM user_achievements WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer rows.Close()

	unlockedAt := make(map[string]time.Time)
	for rows.Next() {
		var code string
		var at time.Time
		if err := rows.Scan(&code, &at); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		unlockedAt[code] = at
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read achievements: %w", err)
	}

	result := make([]*achievement.DefinitionWithStatus, 0, len(achievement.Catalog))
	for _, d := range achievement.Catalog {
		entry := &achievement.DefinitionWithStatus{Definition: d}
		if at, ok := unlockedAt[d.Code]; ok {
			entry.Unlocked = true
			entry.UnlockedAt = &at
		}
		result = append(result, entry)
	}
	return result, nil
}

// CheckAndUnlock evaluates the catalog against the user's aggregates and
// persists anything newly satisfied. The unique (user_id, code) index makes
// concurrent checks race-safe: whoever inserts first wins, the loser's
// insert is a no-op and awards nothing.
func (s *AchievementService) CheckAndUnlock(ctx context.Context, userID uuid.UUID) ([]achievement.Definition, error) {
	metrics, err := s.aggregateMetrics(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT code FROM user_achievements WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unlocked codes: %w", err)
	}
	defer rows.Close()

	unlocked := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan unlocked code: %w", err)
		}
		unlocked[code] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read unlocked codes: %w", err)
	}

	candidates := achievement.Evaluate(metrics, unlocked)
	if len(candidates) == 0 {
		return nil, nil
	}

	var awarded []achievement.Definition
	for _, d := range candidates {
		result, err := s.db.Exec(ctx, `
		INSERT INTO user_achievements (id, user_id, code, unlocked_at, notified)
		VALUES ($1, $2, $3, NOW(), false)
		ON CONFLICT (user_id, code) DO NOTHING
		`, uuid.New(), userID, d.Code)
		if err != nil {
			return nil, fmt.Errorf("failed to unlock %s: %w", d.Code, err)
		}
		if result.RowsAffected() == 0 {
			continue
		}

		awarded = append(awarded, d)

		if d.Points > 0 {
			_, err = s.profiles.AddStatsByUserID(ctx, userID, profile.StatsUpdate{AddScore: d.Points})
			if err != nil {
				log.Printf("CheckAndUnlock: failed to award %d points for %s: %v", d.Points, d.Code, err)
			}
		}

		if s.notifications != nil {
			s.notifications.Notify(ctx, userID, &notification.CreateRequest{
				Type:     notification.TypeAchievement,
				Title:    "Achievement unlocked!",
				Body:     fmt.Sprintf("%s - %s", d.Title, d.Description),
				Priority: notification.PriorityHigh,
				Data:     map[string]any{"code": d.Code, "points": d.Points},
			})
		}
	}

	if len(awarded) > 0 {
		middleware.CountAchievementUnlocks(len(awarded))
	}
	return awarded, nil
}

// CheckAndUnlockByClerkID is the HTTP-facing variant.
func (s *AchievementService) CheckAndUnlockByClerkID(ctx context.Context, clerkID string) ([]achievement.Definition, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}
	return s.CheckAndUnlock(ctx, userID)
}

func (s *AchievementService) MarkNotified(ctx context.Context, userID uuid.UUID, codes []string) error {
	for _, code := range codes {
		_, err := s.db.Exec(ctx, `
		UPDATE user_achievements SET notified = true WHERE user_id = $1 AND code = $2
		`, userID, code)
		if err != nil {
			return fmt.Errorf("failed to mark %s notified: %w", code, err)
		}
	}
	return nil
}

// aggregateMetrics pulls the lifetime counters unlock rules run against.
// Task facts come from the activity log, habit facts from the habits table.
func (s *AchievementService) aggregateMetrics(ctx context.Context, userID uuid.UUID) (achievement.Metrics, error) {
	var m achievement.Metrics

	query := `
	SELECT
		COUNT(*) FILTER (WHERE action_type = 'task_complete'),
		COUNT(*) FILTER (WHERE action_type = 'task_complete' AND is_early),
		COUNT(*) FILTER (WHERE action_type = 'task_complete' AND is_night),
		COUNT(*) FILTER (WHERE action_type = 'task_complete' AND is_weekend),
		COALESCE(SUM(amount) FILTER (WHERE action_type = 'transaction' AND tx_type = 'income'), 0)
	FROM activity_log
	WHERE user_id = $1
	`

	err := s.db.QueryRow(ctx, query, userID).Scan(
		&m.TasksCompleted, &m.EarlyTasks, &m.NightTasks, &m.WeekendTasks, &m.TotalIncome,
	)
	if err != nil {
		return m, fmt.Errorf("failed to aggregate activity metrics: %w", err)
	}

	err = s.db.QueryRow(ctx, `
	SELECT COALESCE(MAX(best_streak), 0), COALESCE(SUM(total_completions), 0)
	FROM habits
	WHERE user_id = $1
	`, userID).Scan(&m.BestHabitStreak, &m.HabitsCompleted)
	if err != nil {
		return m, fmt.Errorf("failed to aggregate habit metrics: %w", err)
	}

	return m, nil
}
