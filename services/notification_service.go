package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"hustleHQAPI/internal/notification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationService struct {
	db         *pgxpool.Pool
	dispatcher *NotificationDispatcher
}

func NewNotificationService(db *pgxpool.Pool) *NotificationService {
	s := &NotificationService{db: db}
	s.dispatcher = NewNotificationDispatcher(s)
	return s
}

func (s *NotificationService) Dispatcher() *NotificationDispatcher {
	return s.dispatcher
}

// Notify persists an in-app notification and hands it to the dispatcher for
// push delivery. Persistence failures are returned; delivery failures are
// the dispatcher's problem and never block the caller.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, req *notification.CreateRequest) (*notification.Notification, error) {
	req.UserID = userID
	if req.Priority == "" {
		req.Priority = notification.PriorityNormal
	}

	dataJSON, err := json.Marshal(req.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notification data: %w", err)
	}

	notif := &notification.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      req.Type,
		Priority:  req.Priority,
		Status:    notification.StatusPending,
		Title:     req.Title,
		Body:      req.Body,
		Data:      req.Data,
		CreatedAt: time.Now(),
	}

	query := `
	INSERT INTO notifications (id, user_id, type, priority, status, title, body, data, is_read, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9)
	`

	_, err = s.db.Exec(ctx, query,
		notif.ID, notif.UserID, notif.Type, notif.Priority, notif.Status,
		notif.Title, notif.Body, dataJSON, notif.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	prefs, err := s.GetPreferencesByUserID(ctx, userID)
	if err != nil {
		log.Printf("Notify: preferences lookup failed for %s: %v", userID, err)
		return notif, nil
	}
	if prefs.InAppEnabled || prefs.PushEnabled {
		s.dispatcher.Dispatch(notif, prefs)
	}

	return notif, nil
}

func (s *NotificationService) List(ctx context.Context, clerkID string, limit int) (*notification.ListResponse, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
	SELECT id, user_id, type, priority, status, title, body, data, is_read, read_at, sent_at, created_at
	FROM notifications
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	resp := &notification.ListResponse{Notifications: []*notification.Notification{}}
	for rows.Next() {
		n := &notification.Notification{}
		var dataJSON []byte
		err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Priority, &n.Status,
			&n.Title, &n.Body, &dataJSON, &n.IsRead, &n.ReadAt, &n.SentAt, &n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(dataJSON) > 0 {
			if err := json.Unmarshal(dataJSON, &n.Data); err != nil {
				log.Printf("List: bad notification data for %s: %v", n.ID, err)
			}
		}
		resp.Notifications = append(resp.Notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}

	err = s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`, userID,
	).Scan(&resp.UnreadCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return resp, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, clerkID string, notificationID uuid.UUID) error {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(ctx, `
	UPDATE notifications
	SET is_read = true, read_at = NOW(), status = 'read'
	WHERE id = $1 AND user_id = $2
	`, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, clerkID string) error {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
	UPDATE notifications
	SET is_read = true, read_at = NOW(), status = 'read'
	WHERE user_id = $1 AND is_read = false
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (s *NotificationService) GetPreferences(ctx context.Context, clerkID string) (*notification.Preferences, error) {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return nil, err
	}
	return s.GetPreferencesByUserID(ctx, userID)
}

func (s *NotificationService) GetPreferencesByUserID(ctx context.Context, userID uuid.UUID) (*notification.Preferences, error) {
	prefs := &notification.Preferences{UserID: userID, PushEnabled: true, InAppEnabled: true}

	err := s.db.QueryRow(ctx, `
	SELECT push_enabled, in_app_enabled
	FROM notification_preferences
	WHERE user_id = $1
	`, userID).Scan(&prefs.PushEnabled, &prefs.InAppEnabled)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT token, platform FROM device_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query device tokens: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t notification.DeviceToken
		if err := rows.Scan(&t.Token, &t.Platform); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		prefs.DeviceTokens = append(prefs.DeviceTokens, t)
	}
	return prefs, rows.Err()
}

func (s *NotificationService) UpdatePreferences(ctx context.Context, clerkID string, pushEnabled, inAppEnabled bool) error {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
	INSERT INTO notification_preferences (user_id, push_enabled, in_app_enabled)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id) DO UPDATE SET push_enabled = $2, in_app_enabled = $3
	`, userID, pushEnabled, inAppEnabled)
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil
}

func (s *NotificationService) RegisterDevice(ctx context.Context, clerkID string, req *notification.RegisterDeviceRequest) error {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
	INSERT INTO device_tokens (user_id, token, platform, created_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (token) DO UPDATE SET user_id = $1, platform = $3
	`, userID, req.Token, req.Platform)
	if err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}
	return nil
}

func (s *NotificationService) UnregisterDevice(ctx context.Context, clerkID string, token string) error {
	userID, err := resolveUserID(ctx, s.db, clerkID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx,
		`DELETE FROM device_tokens WHERE user_id = $1 AND token = $2`, userID, token)
	if err != nil {
		return fmt.Errorf("failed to unregister device: %w", err)
	}
	return nil
}
