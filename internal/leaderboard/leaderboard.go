package leaderboard

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	AvatarURL   *string   `json:"avatar_url" db:"avatar_url"`
	Score       int       `json:"score" db:"score"`
	HustleLevel string    `json:"hustle_level" db:"hustle_level"`
	Rank        int       `json:"rank"`
	RankDelta   int       `json:"rank_delta"`
	JoinedAt    time.Time `json:"joined_at" db:"joined_at"`
}

type Leaderboard struct {
	Entries      []*Entry `json:"entries"`
	UserPosition *Entry   `json:"user_position"`
	TotalUsers   int      `json:"total_users"`
}
