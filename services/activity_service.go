package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hustleHQAPI/internal/challenge"
	"hustleHQAPI/internal/profile"
	"hustleHQAPI/internal/score"
	"hustleHQAPI/internal/stats"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityService is the single entry point for productivity events. Every
// Record* call appends to the activity log, folds the event into the daily
// tally and lifetime totals, then fans out to challenges, weekly goals and
// achievement checks. The fan-out steps are best-effort: a failed challenge
// update never rolls back the recorded activity.
type ActivityService struct {
	db           *pgxpool.Pool
	weights      score.Weights
	stats        *StatsService
	profiles     *ProfileService
	challenges   *ChallengeService
	goals        *GoalService
	achievements *AchievementService
}

func NewActivityService(db *pgxpool.Pool, statsSvc *StatsService, profiles *ProfileService, challenges *ChallengeService, goals *GoalService, achievements *AchievementService) *ActivityService {
	return &ActivityService{
		db:           db,
		weights:      score.DefaultWeights,
		stats:        statsSvc,
		profiles:     profiles,
		challenges:   challenges,
		goals:        goals,
		achievements: achievements,
	}
}

// taskFlags derives the frozen facts for a task completion. Early means
// before 06:00, night means before 04:00, both in the reported local time.
func taskFlags(completedAt time.Time) (early, night, weekend bool) {
	hour := completedAt.Hour()
	wd := completedAt.Weekday()
	return hour < 6, hour < 4, wd == time.Saturday || wd == time.Sunday
}

// RecordTaskCompletion handles a "task done" event. completedAt is the
// client-reported completion time; the early/night/weekend facts are frozen
// into the log at write time so later rule changes never rewrite history.
func (s *ActivityService) RecordTaskCompletion(ctx context.Context, clerkID string, completedAt time.Time) (*profile.Profile, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	early, night, weekend := taskFlags(completedAt)
	err = s.logActivity(ctx, userID, "task_complete", completedAt, 0, "", early, night, weekend)
	if err != nil {
		return nil, err
	}

	if _, err := s.stats.RecordDaily(ctx, userID, stats.Update{AddTasksCompleted: 1}); err != nil {
		log.Printf("RecordTaskCompletion: daily stats: %v", err)
	}

	p, err := s.profiles.AddStatsByUserID(ctx, userID, profile.StatsUpdate{AddScore: s.weights.TaskPoints})
	if err != nil {
		return nil, err
	}

	s.fanOut(ctx, userID, challenge.ActionTaskComplete, 0, 0, "")
	return p, nil
}

// RecordTransaction handles a logged income or expense. Only income moves
// the score and earnings totals; expenses just land in the daily tally.
func (s *ActivityService) RecordTransaction(ctx context.Context, clerkID string, amount float64, txType string) (*profile.Profile, error) {
	if amount < 0 {
		return nil, fmt.Errorf("transaction amount cannot be negative")
	}
	if txType != "income" && txType != "expense" {
		return nil, fmt.Errorf("unknown transaction type %q", txType)
	}

	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	err = s.logActivity(ctx, userID, "transaction", time.Now(), amount, txType, false, false, false)
	if err != nil {
		return nil, err
	}

	upd := stats.Update{}
	statsUpd := profile.StatsUpdate{}
	if txType == "income" {
		upd.AddIncome = amount
		statsUpd.AddEarnings = amount
		if s.weights.IncomeUnit > 0 {
			statsUpd.AddScore = (int(amount) / s.weights.IncomeUnit) * s.weights.IncomePoints
		}
	} else {
		upd.AddExpense = amount
	}

	if _, err := s.stats.RecordDaily(ctx, userID, upd); err != nil {
		log.Printf("RecordTransaction: daily stats: %v", err)
	}

	p, err := s.profiles.AddStatsByUserID(ctx, userID, statsUpd)
	if err != nil {
		return nil, err
	}

	s.fanOut(ctx, userID, challenge.ActionTransaction, 0, amount, txType)
	return p, nil
}

// RecordFocusSession handles a finished focus session of the given length.
func (s *ActivityService) RecordFocusSession(ctx context.Context, clerkID string, minutes int) (*profile.Profile, error) {
	if minutes <= 0 {
		return nil, fmt.Errorf("focus minutes must be positive")
	}

	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	err = s.logActivity(ctx, userID, "focus_session", time.Now(), float64(minutes), "", false, false, false)
	if err != nil {
		return nil, err
	}

	if _, err := s.stats.RecordDaily(ctx, userID, stats.Update{AddFocusMinutes: minutes}); err != nil {
		log.Printf("RecordFocusSession: daily stats: %v", err)
	}

	statsUpd := profile.StatsUpdate{AddFocusMinutes: minutes}
	if s.weights.FocusBlockMinutes > 0 {
		statsUpd.AddScore = (minutes / s.weights.FocusBlockMinutes) * s.weights.FocusBlockPoints
	}
	p, err := s.profiles.AddStatsByUserID(ctx, userID, statsUpd)
	if err != nil {
		return nil, err
	}

	s.fanOut(ctx, userID, challenge.ActionFocusSession, minutes, 0, "")
	return p, nil
}

// RecordHabitCompletion is called by the habit service after a completion is
// persisted. It does not touch the habits table itself.
func (s *ActivityService) RecordHabitCompletion(ctx context.Context, userID uuid.UUID) {
	err := s.logActivity(ctx, userID, "habit_complete", time.Now(), 0, "", false, false, false)
	if err != nil {
		log.Printf("RecordHabitCompletion: %v", err)
	}

	if _, err := s.stats.RecordDaily(ctx, userID, stats.Update{AddHabitsCompleted: 1}); err != nil {
		log.Printf("RecordHabitCompletion: daily stats: %v", err)
	}

	_, err = s.profiles.AddStatsByUserID(ctx, userID, profile.StatsUpdate{AddScore: s.weights.HabitPoints})
	if err != nil {
		log.Printf("RecordHabitCompletion: score: %v", err)
	}

	s.fanOut(ctx, userID, challenge.ActionHabitComplete, 0, 0, "")
}

// RecordLogin feeds daily-login challenges. It awards no score.
func (s *ActivityService) RecordLogin(ctx context.Context, clerkID string) error {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return err
	}

	if err := s.logActivity(ctx, userID, "login", time.Now(), 0, "", false, false, false); err != nil {
		return err
	}

	s.challenges.ApplyAction(ctx, userID, challenge.ActionLogin, 0, "")
	return nil
}

func (s *ActivityService) logActivity(ctx context.Context, userID uuid.UUID, action string, occurredAt time.Time, amount float64, txType string, isEarly, isNight, isWeekend bool) error {
	_, err := s.db.Exec(ctx, `
	INSERT INTO activity_log (id, user_id, action_type, occurred_at, amount, tx_type, is_early, is_night, is_weekend)
	VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
	`, uuid.New(), userID, action, occurredAt, amount, txType, isEarly, isNight, isWeekend)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}
	return nil
}

func (s *ActivityService) fanOut(ctx context.Context, userID uuid.UUID, action challenge.ActionType, minutes int, amount float64, txType string) {
	s.challenges.ApplyAction(ctx, userID, action, minutes, txType)
	s.goals.ApplyAction(ctx, userID, string(action), minutes, amount, txType)

	if _, err := s.achievements.CheckAndUnlock(ctx, userID); err != nil {
		log.Printf("fanOut: achievement check: %v", err)
	}
}
