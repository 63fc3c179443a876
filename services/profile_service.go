package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hustleHQAPI/internal/leaderboard"
	"hustleHQAPI/internal/notification"
	"hustleHQAPI/internal/profile"
	"hustleHQAPI/internal/score"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileService struct {
	db            *pgxpool.Pool
	notifications *NotificationService
}

func NewProfileService(db *pgxpool.Pool, notifications *NotificationService) *ProfileService {
	return &ProfileService{db: db, notifications: notifications}
}

const profileColumns = `id, clerk_id, email, full_name, display_name, avatar_url, hustle_level, productivity_score, total_earnings, total_focus_hours, created_at, updated_at`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.ID,
		&p.ClerkID,
		&p.Email,
		&p.FullName,
		&p.DisplayName,
		&p.AvatarURL,
		&p.HustleLevel,
		&p.ProductivityScore,
		&p.TotalEarnings,
		&p.TotalFocusHours,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// resolveUserID maps a Clerk identity onto the internal profile id. Every
// service goes through this before touching user-owned rows.
func resolveUserID(ctx context.Context, db *pgxpool.Pool, clerkID string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := db.QueryRow(ctx, `SELECT id FROM profiles WHERE clerk_id = $1`, clerkID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("profile not found")
		}
		return uuid.Nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return userID, nil
}

func (s *ProfileService) CreateProfile(ctx context.Context, req *profile.CreateProfileRequest) (*profile.Profile, error) {
	now := time.Now()

	query := `
	INSERT INTO profiles (id, clerk_id, email, full_name, display_name, avatar_url, hustle_level, productivity_score, total_earnings, total_focus_hours, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, 0, $8, $9)
	ON CONFLICT (clerk_id) DO UPDATE SET email = EXCLUDED.email, updated_at = EXCLUDED.updated_at
	RETURNING ` + profileColumns

	p, err := scanProfile(s.db.QueryRow(ctx, query,
		uuid.New(),
		req.ClerkID,
		req.Email,
		req.FullName,
		req.DisplayName,
		req.AvatarURL,
		score.ResolveHustleLevel(0),
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) GetProfileByClerkID(ctx context.Context, clerkID string) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE clerk_id = $1`

	p, err := scanProfile(s.db.QueryRow(ctx, query, clerkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, clerkID string, req *profile.UpdateProfileRequest) (*profile.Profile, error) {
	query := `
	UPDATE profiles
	SET full_name = COALESCE($2, full_name),
	    display_name = COALESCE($3, display_name),
	    avatar_url = COALESCE($4, avatar_url),
	    updated_at = NOW()
	WHERE clerk_id = $1
	RETURNING ` + profileColumns

	p, err := scanProfile(s.db.QueryRow(ctx, query, clerkID, req.FullName, req.DisplayName, req.AvatarURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) DeleteProfileByClerkID(ctx context.Context, clerkID string) error {
	result, err := s.db.Exec(ctx, `DELETE FROM profiles WHERE clerk_id = $1`, clerkID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found")
	}
	return nil
}

// AddStats applies score, earnings and focus deltas in a single statement so
// concurrent activity never loses an increment. The hustle level is derived
// from the resulting score, never written independently.
func (s *ProfileService) AddStats(ctx context.Context, clerkID string, upd profile.StatsUpdate) (*profile.Profile, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}
	return s.AddStatsByUserID(ctx, userID, upd)
}

func (s *ProfileService) AddStatsByUserID(ctx context.Context, userID uuid.UUID, upd profile.StatsUpdate) (*profile.Profile, error) {
	query := `
	UPDATE profiles
	SET productivity_score = GREATEST(productivity_score + $2, 0),
	    total_earnings = total_earnings + $3,
	    total_focus_hours = total_focus_hours + ($4 / 60),
	    updated_at = NOW()
	WHERE id = $1
	RETURNING ` + profileColumns

	p, err := scanProfile(s.db.QueryRow(ctx, query, userID, upd.AddScore, upd.AddEarnings, upd.AddFocusMinutes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile not found")
		}
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	level := score.ResolveHustleLevel(p.ProductivityScore)
	if level != p.HustleLevel {
		_, err = s.db.Exec(ctx, `UPDATE profiles SET hustle_level = $2 WHERE id = $1`, userID, level)
		if err != nil {
			return nil, fmt.Errorf("failed to update hustle level: %w", err)
		}
		leveledUp := score.HustleLevelIndex(level) > score.HustleLevelIndex(p.HustleLevel)
		p.HustleLevel = level
		if leveledUp && s.notifications != nil {
			s.notifications.Notify(ctx, userID, &notification.CreateRequest{
				Type:     notification.TypeLevelUp,
				Title:    "Level up!",
				Body:     fmt.Sprintf("You reached %s. Keep the momentum going.", level),
				Priority: notification.PriorityHigh,
			})
		}
	}

	return p, nil
}

// GetLeaderboard ranks every profile with a positive score. Deltas compare
// against last week's snapshot; users absent from it show no movement.
func (s *ProfileService) GetLeaderboard(ctx context.Context, clerkID string) (*leaderboard.Leaderboard, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, COALESCE(display_name, email), avatar_url, productivity_score, hustle_level, created_at
	FROM profiles
	WHERE productivity_score > 0
	ORDER BY productivity_score DESC, created_at ASC
	LIMIT 100
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*leaderboard.Entry
	for rows.Next() {
		e := &leaderboard.Entry{}
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.AvatarURL, &e.Score, &e.HustleLevel, &e.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries = leaderboard.Rank(entries)

	weekStart := currentWeekStart()
	previous, err := s.loadSnapshot(ctx, weekStart.AddDate(0, 0, -7))
	if err != nil {
		log.Printf("GetLeaderboard: snapshot load failed: %v", err)
	} else {
		leaderboard.ApplyDeltas(entries, previous)
	}

	if err := s.saveSnapshot(ctx, weekStart, entries); err != nil {
		log.Printf("GetLeaderboard: snapshot save failed: %v", err)
	}

	lb := &leaderboard.Leaderboard{
		Entries:    entries,
		TotalUsers: len(entries),
	}
	for _, e := range entries {
		if e.UserID == userID {
			lb.UserPosition = e
			break
		}
	}
	return lb, nil
}

func (s *ProfileService) loadSnapshot(ctx context.Context, weekStart time.Time) (map[uuid.UUID]int, error) {
	rows, err := s.db.Query(ctx,
		`SELECT user_id, rank FROM leaderboard_snapshots WHERE week_start = $1`, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	previous := make(map[uuid.UUID]int)
	for rows.Next() {
		var id uuid.UUID
		var rank int
		if err := rows.Scan(&id, &rank); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		previous[id] = rank
	}
	return previous, rows.Err()
}

func (s *ProfileService) saveSnapshot(ctx context.Context, weekStart time.Time, entries []*leaderboard.Entry) error {
	for _, e := range entries {
		_, err := s.db.Exec(ctx, `
		INSERT INTO leaderboard_snapshots (week_start, user_id, rank, score)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (week_start, user_id) DO UPDATE SET rank = EXCLUDED.rank, score = EXCLUDED.score
		`, weekStart, e.UserID, e.Rank, e.Score)
		if err != nil {
			return fmt.Errorf("failed to save snapshot row: %w", err)
		}
	}
	return nil
}

func currentWeekStart() time.Time {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
