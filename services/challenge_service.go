package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hustleHQAPI/internal/challenge"
	"hustleHQAPI/internal/notification"
	"hustleHQAPI/internal/profile"
	"hustleHQAPI/middleware"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChallengeService struct {
	db            *pgxpool.Pool
	profiles      *ProfileService
	notifications *NotificationService
}

func NewChallengeService(db *pgxpool.Pool, profiles *ProfileService, notifications *NotificationService) *ChallengeService {
	return &ChallengeService{db: db, profiles: profiles, notifications: notifications}
}

// templateForDate picks today's template deterministically from the pool so
// every user and every replica mints the same challenge without
// coordination.
func templateForDate(date time.Time) challenge.Template {
	day := int(date.UTC().Unix() / 86400)
	return challenge.Templates[day%len(challenge.Templates)]
}

// GetTodayChallenge returns the user's challenge for today, minting the
// day's instance and the user's progress row on first touch. The unique
// (date, title) and (user_id, challenge_id) indexes make concurrent first
// requests converge on single rows.
func (s *ChallengeService) GetTodayChallenge(ctx context.Context, clerkID string) (*challenge.UserChallengeResponse, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	ch, err := s.mintDailyChallenge(ctx, today)
	if err != nil {
		return nil, err
	}

	progress, err := s.ensureUserChallenge(ctx, userID, ch.ID)
	if err != nil {
		return nil, err
	}

	return &challenge.UserChallengeResponse{Challenge: *ch, Progress: *progress}, nil
}

func (s *ChallengeService) mintDailyChallenge(ctx context.Context, date time.Time) (*challenge.DailyChallenge, error) {
	tmpl := templateForDate(date)

	_, err := s.db.Exec(ctx, `
	INSERT INTO daily_challenges (id, date, title, description, challenge_type, target_value, points_reward, is_active, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW())
	ON CONFLICT (date, title) DO NOTHING
	`, uuid.New(), date, tmpl.Title, tmpl.Description, tmpl.Type, tmpl.TargetValue, tmpl.PointsReward)
	if err != nil {
		return nil, fmt.Errorf("failed to mint daily challenge: %w", err)
	}

	ch := &challenge.DailyChallenge{}
	err = s.db.QueryRow(ctx, `
	SELECT id, date, title, description, challenge_type, target_value, points_reward, is_active, created_at
	FROM daily_challenges
	WHERE date = $1 AND title = $2
	`, date, tmpl.Title).Scan(
		&ch.ID, &ch.Date, &ch.Title, &ch.Description, &ch.ChallengeType,
		&ch.TargetValue, &ch.PointsReward, &ch.IsActive, &ch.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily challenge: %w", err)
	}
	return ch, nil
}

func (s *ChallengeService) ensureUserChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*challenge.UserChallenge, error) {
	_, err := s.db.Exec(ctx, `
	INSERT INTO user_challenges (id, user_id, challenge_id, current_progress, is_completed, created_at)
	VALUES ($1, $2, $3, 0, false, NOW())
	ON CONFLICT (user_id, challenge_id) DO NOTHING
	`, uuid.New(), userID, challengeID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign challenge: %w", err)
	}

	return s.getUserChallenge(ctx, userID, challengeID)
}

func (s *ChallengeService) getUserChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*challenge.UserChallenge, error) {
	uc := &challenge.UserChallenge{}
	err := s.db.QueryRow(ctx, `
	SELECT id, user_id, challenge_id, current_progress, is_completed, completed_at, created_at
	FROM user_challenges
	WHERE user_id = $1 AND challenge_id = $2
	`, userID, challengeID).Scan(
		&uc.ID, &uc.UserID, &uc.ChallengeID, &uc.CurrentProgress,
		&uc.IsCompleted, &uc.CompletedAt, &uc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("challenge not assigned")
		}
		return nil, fmt.Errorf("failed to load challenge progress: %w", err)
	}
	return uc, nil
}

// UpdateProgress sets the user's progress on a challenge. Completion latches
// at the target; updates after completion are acknowledged no-ops.
func (s *ChallengeService) UpdateProgress(ctx context.Context, clerkID string, challengeID uuid.UUID, newValue int) (*challenge.UserChallengeResponse, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}
	return s.applyProgress(ctx, userID, challengeID, newValue)
}

func (s *ChallengeService) applyProgress(ctx context.Context, userID, challengeID uuid.UUID, newValue int) (*challenge.UserChallengeResponse, error) {
	ch := &challenge.DailyChallenge{}
	err := s.db.QueryRow(ctx, `
	SELECT id, date, title, description, challenge_type, target_value, points_reward, is_active, created_at
	FROM daily_challenges
	WHERE id = $1
	`, challengeID).Scan(
		&ch.ID, &ch.Date, &ch.Title, &ch.Description, &ch.ChallengeType,
		&ch.TargetValue, &ch.PointsReward, &ch.IsActive, &ch.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("challenge not found")
		}
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}

	uc, err := s.getUserChallenge(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}

	updated, latched, err := challenge.ApplyProgress(*uc, newValue, ch.TargetValue, time.Now())
	if err != nil {
		return nil, err
	}

	if updated != *uc {
		// Progress and completion land in one write. The is_completed guard
		// keeps a racing update from touching an already-latched row.
		_, err = s.db.Exec(ctx, `
		UPDATE user_challenges
		SET current_progress = $3, is_completed = $4, completed_at = $5
		WHERE user_id = $1 AND challenge_id = $2 AND is_completed = false
		`, userID, challengeID, updated.CurrentProgress, updated.IsCompleted, updated.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to save progress: %w", err)
		}
	}

	if latched {
		s.onCompleted(ctx, userID, ch)
	}

	return &challenge.UserChallengeResponse{Challenge: *ch, Progress: updated}, nil
}

// Complete is the manual completion path. Same latch as UpdateProgress.
func (s *ChallengeService) Complete(ctx context.Context, clerkID string, challengeID uuid.UUID) (*challenge.UserChallengeResponse, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	ch := &challenge.DailyChallenge{}
	err = s.db.QueryRow(ctx, `
	SELECT id, date, title, description, challenge_type, target_value, points_reward, is_active, created_at
	FROM daily_challenges WHERE id = $1
	`, challengeID).Scan(
		&ch.ID, &ch.Date, &ch.Title, &ch.Description, &ch.ChallengeType,
		&ch.TargetValue, &ch.PointsReward, &ch.IsActive, &ch.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("challenge not found")
		}
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}

	uc, err := s.getUserChallenge(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}

	updated, latched := challenge.Complete(*uc, time.Now())
	if latched {
		_, err = s.db.Exec(ctx, `
		UPDATE user_challenges
		SET is_completed = true, completed_at = $3
		WHERE user_id = $1 AND challenge_id = $2 AND is_completed = false
		`, userID, challengeID, updated.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to complete challenge: %w", err)
		}
		s.onCompleted(ctx, userID, ch)
	}

	return &challenge.UserChallengeResponse{Challenge: *ch, Progress: updated}, nil
}

// ApplyAction advances today's challenge from an activity event when the
// challenge type matches the action. Unrelated actions are ignored.
func (s *ChallengeService) ApplyAction(ctx context.Context, userID uuid.UUID, action challenge.ActionType, minutes int, txType string) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	ch, err := s.mintDailyChallenge(ctx, today)
	if err != nil {
		log.Printf("ApplyAction: %v", err)
		return
	}

	uc, err := s.ensureUserChallenge(ctx, userID, ch.ID)
	if err != nil {
		log.Printf("ApplyAction: %v", err)
		return
	}
	if uc.IsCompleted {
		return
	}

	inc, ok := challenge.Increment(ch.ChallengeType, action, minutes, txType)
	if !ok {
		return
	}

	if _, err := s.applyProgress(ctx, userID, ch.ID, uc.CurrentProgress+inc); err != nil {
		log.Printf("ApplyAction: failed to advance challenge %s for %s: %v", ch.ID, userID, err)
	}
}

func (s *ChallengeService) onCompleted(ctx context.Context, userID uuid.UUID, ch *challenge.DailyChallenge) {
	middleware.CountChallengeCompletion()

	if ch.PointsReward > 0 {
		_, err := s.profiles.AddStatsByUserID(ctx, userID, profile.StatsUpdate{AddScore: ch.PointsReward})
		if err != nil {
			log.Printf("onCompleted: failed to award %d points: %v", ch.PointsReward, err)
		}
	}

	if s.notifications != nil {
		s.notifications.Notify(ctx, userID, &notification.CreateRequest{
			Type:     notification.TypeChallenge,
			Title:    "Challenge complete!",
			Body:     fmt.Sprintf("%s done. +%d points.", ch.Title, ch.PointsReward),
			Priority: notification.PriorityNormal,
			Data:     map[string]any{"challenge_id": ch.ID.String(), "points": ch.PointsReward},
		})
	}
}
