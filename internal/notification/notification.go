package notification

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	TypeAchievement NotificationType = "achievement"
	TypeChallenge   NotificationType = "challenge"
	TypeWeeklyGoal  NotificationType = "weekly_goal"
	TypeLevelUp     NotificationType = "level_up"
	TypeStreakRisk  NotificationType = "streak_risk"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusRead    Status = "read"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Priority  Priority         `json:"priority" db:"priority"`
	Status    Status           `json:"status" db:"status"`
	Title     string           `json:"title" db:"title"`
	Body      string           `json:"body" db:"body"`
	Data      map[string]any   `json:"data" db:"data"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty" db:"read_at"`
	SentAt    *time.Time       `json:"sent_at,omitempty" db:"sent_at"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

type DeviceToken struct {
	Token    string `json:"token" db:"token"`
	Platform string `json:"platform" db:"platform"`
}

type Preferences struct {
	UserID       uuid.UUID     `json:"user_id" db:"user_id"`
	PushEnabled  bool          `json:"push_enabled" db:"push_enabled"`
	InAppEnabled bool          `json:"in_app_enabled" db:"in_app_enabled"`
	DeviceTokens []DeviceToken `json:"device_tokens"`
}

type CreateRequest struct {
	UserID   uuid.UUID        `json:"user_id" validate:"required"`
	Type     NotificationType `json:"type" validate:"required"`
	Priority Priority         `json:"priority"`
	Title    string           `json:"title" validate:"required"`
	Body     string           `json:"body"`
	Data     map[string]any   `json:"data"`
}

type RegisterDeviceRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

type ListResponse struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   int             `json:"unread_count"`
}
