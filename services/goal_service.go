package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hustleHQAPI/internal/goal"
	"hustleHQAPI/internal/notification"
	"hustleHQAPI/internal/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Completing a weekly goal is worth a flat score bonus on top of whatever
// activity fed it.
const goalCompletionPoints = 50

type GoalService struct {
	db            *pgxpool.Pool
	profiles      *ProfileService
	notifications *NotificationService
}

func NewGoalService(db *pgxpool.Pool, profiles *ProfileService, notifications *NotificationService) *GoalService {
	return &GoalService{db: db, profiles: profiles, notifications: notifications}
}

const goalColumns = `id, user_id, week_start, title, description, goal_type, target_value, current_value, is_completed, created_at`

func scanGoal(row pgx.Row) (*goal.WeeklyGoal, error) {
	g := &goal.WeeklyGoal{}
	err := row.Scan(
		&g.ID, &g.UserID, &g.WeekStart, &g.Title, &g.Description,
		&g.GoalType, &g.TargetValue, &g.CurrentValue, &g.IsCompleted, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GoalService) CreateGoal(ctx context.Context, clerkID string, req *goal.CreateGoalRequest) (*goal.WeeklyGoal, error) {
	if req.TargetValue <= 0 {
		return nil, fmt.Errorf("goal target must be positive")
	}

	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	INSERT INTO weekly_goals (id, user_id, week_start, title, description, goal_type, target_value, current_value, is_completed, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, 0, false, NOW())
	RETURNING ` + goalColumns

	g, err := scanGoal(s.db.QueryRow(ctx, query,
		uuid.New(), userID, goal.WeekStart(time.Now().UTC()),
		req.Title, req.Description, req.GoalType, req.TargetValue,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return g, nil
}

// GetWeeklyGoals returns the current week's goals, completed ones included.
func (s *GoalService) GetWeeklyGoals(ctx context.Context, clerkID string) ([]*goal.WeeklyGoal, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT ` + goalColumns + `
	FROM weekly_goals
	WHERE user_id = $1 AND week_start = $2
	ORDER BY created_at ASC
	`

	rows, err := s.db.Query(ctx, query, userID, goal.WeekStart(time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []*goal.WeeklyGoal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// UpdateProgress sets a goal's progress value. Completion latches at the
// target and stays latched through later updates.
func (s *GoalService) UpdateProgress(ctx context.Context, clerkID string, goalID uuid.UUID, value float64) (*goal.WeeklyGoal, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}
	return s.applyProgress(ctx, userID, goalID, func(float64) float64 { return value })
}

// applyProgress loads, applies the latch and persists value and flag in one
// write. next maps the goal's current value to the new one so callers can
// either set or add.
func (s *GoalService) applyProgress(ctx context.Context, userID, goalID uuid.UUID, next func(current float64) float64) (*goal.WeeklyGoal, error) {
	g, err := scanGoal(s.db.QueryRow(ctx,
		`SELECT `+goalColumns+` FROM weekly_goals WHERE id = $1 AND user_id = $2`, goalID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("goal not found")
		}
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}

	updated, latched, err := goal.ApplyProgress(*g, next(g.CurrentValue))
	if err != nil {
		return nil, err
	}

	if updated != *g {
		_, err = s.db.Exec(ctx, `
		UPDATE weekly_goals
		SET current_value = $3, is_completed = $4
		WHERE id = $1 AND user_id = $2 AND is_completed = false
		`, goalID, userID, updated.CurrentValue, updated.IsCompleted)
		if err != nil {
			return nil, fmt.Errorf("failed to save goal progress: %w", err)
		}
	}

	if latched {
		s.onCompleted(ctx, userID, &updated)
	}
	return &updated, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, clerkID string, goalID uuid.UUID) error {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(ctx,
		`DELETE FROM weekly_goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("goal not found")
	}
	return nil
}

// ApplyAction advances every matching incomplete goal of the current week
// from an activity event.
func (s *GoalService) ApplyAction(ctx context.Context, userID uuid.UUID, action string, minutes int, amount float64, txType string) {
	query := `
	SELECT ` + goalColumns + `
	FROM weekly_goals
	WHERE user_id = $1 AND week_start = $2 AND is_completed = false
	`

	rows, err := s.db.Query(ctx, query, userID, goal.WeekStart(time.Now().UTC()))
	if err != nil {
		log.Printf("ApplyAction: failed to query goals: %v", err)
		return
	}
	defer rows.Close()

	var goals []*goal.WeeklyGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			log.Printf("ApplyAction: failed to scan goal: %v", err)
			return
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		log.Printf("ApplyAction: failed to read goals: %v", err)
		return
	}

	for _, g := range goals {
		delta, ok := goal.Matches(g.GoalType, action, minutes, amount, txType)
		if !ok {
			continue
		}
		if _, err := s.applyProgress(ctx, userID, g.ID, func(current float64) float64 { return current + delta }); err != nil {
			log.Printf("ApplyAction: failed to advance goal %s: %v", g.ID, err)
		}
	}
}

func (s *GoalService) onCompleted(ctx context.Context, userID uuid.UUID, g *goal.WeeklyGoal) {
	_, err := s.profiles.AddStatsByUserID(ctx, userID, profile.StatsUpdate{AddScore: goalCompletionPoints})
	if err != nil {
		log.Printf("onCompleted: failed to award goal points: %v", err)
	}

	if s.notifications != nil {
		s.notifications.Notify(ctx, userID, &notification.CreateRequest{
			Type:     notification.TypeWeeklyGoal,
			Title:    "Weekly goal reached!",
			Body:     fmt.Sprintf("%s hit its target. +%d points.", g.Title, goalCompletionPoints),
			Priority: notification.PriorityNormal,
			Data:     map[string]any{"goal_id": g.ID.String()},
		})
	}
}
