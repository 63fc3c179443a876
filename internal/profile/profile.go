package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the score-bearing entity. HustleLevel is derived from
// ProductivityScore on every score write and stored only for display.
type Profile struct {
	ID                uuid.UUID `json:"id" db:"id"`
	ClerkID           string    `json:"clerk_id" db:"clerk_id"`
	Email             string    `json:"email" db:"email"`
	FullName          *string   `json:"full_name" db:"full_name"`
	DisplayName       *string   `json:"display_name" db:"display_name"`
	AvatarURL         *string   `json:"avatar_url" db:"avatar_url"`
	HustleLevel       string    `json:"hustle_level" db:"hustle_level"`
	ProductivityScore int       `json:"productivity_score" db:"productivity_score"`
	TotalEarnings     float64   `json:"total_earnings" db:"total_earnings"`
	TotalFocusHours   int       `json:"total_focus_hours" db:"total_focus_hours"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

type CreateProfileRequest struct {
	ClerkID     string  `json:"clerk_id" validate:"required"`
	Email       string  `json:"email" validate:"required"`
	FullName    *string `json:"full_name"`
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// StatsUpdate is an increment applied to a profile's running totals. AddScore
// triggers a hustle-level recompute.
type StatsUpdate struct {
	AddScore        int     `json:"add_score"`
	AddEarnings     float64 `json:"add_earnings"`
	AddFocusMinutes int     `json:"add_focus_minutes"`
}
