package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hustleHQAPI/internal/habit"
	"hustleHQAPI/internal/notification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StreakReminderWorker nudges users whose habit streaks are about to break:
// a live streak with no completion logged today. One reminder per habit per
// day, enforced by the notifications it already sent.
type StreakReminderWorker struct {
	db            *pgxpool.Pool
	notifications *NotificationService
	stopChan      chan struct{}
}

func NewStreakReminderWorker(db *pgxpool.Pool, notifications *NotificationService) *StreakReminderWorker {
	return &StreakReminderWorker{
		db:            db,
		notifications: notifications,
		stopChan:      make(chan struct{}),
	}
}

func (w *StreakReminderWorker) Start() {
	go w.loop()
}

func (w *StreakReminderWorker) loop() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Evening window only. Earlier reminders just get ignored.
			if h := time.Now().UTC().Hour(); h >= 17 {
				w.sweep()
			}
		case <-w.stopChan:
			return
		}
	}
}

func (w *StreakReminderWorker) Stop() {
	close(w.stopChan)
}

func (w *StreakReminderWorker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	today := habit.Day(time.Now().UTC())

	query := `
	SELECT h.id, h.user_id, h.title, h.current_streak
	FROM habits h
	WHERE h.is_active = true
	  AND h.current_streak > 0
	  AND NOT EXISTS (
		SELECT 1 FROM habit_completions c
		WHERE c.habit_id = h.id AND c.completed_date = $1
	  )
	  AND NOT EXISTS (
		SELECT 1 FROM notifications n
		WHERE n.user_id = h.user_id
		  AND n.type = 'streak_risk'
		  AND n.created_at >= $1
		  AND n.data->>'habit_id' = h.id::text
	  )
	LIMIT 500
	`

	rows, err := w.db.Query(ctx, query, today)
	if err != nil {
		log.Printf("streak sweep: query failed: %v", err)
		return
	}
	defer rows.Close()

	type atRisk struct {
		habitID uuid.UUID
		userID  uuid.UUID
		title   string
		streak  int
	}
	var pending []atRisk
	for rows.Next() {
		var r atRisk
		if err := rows.Scan(&r.habitID, &r.userID, &r.title, &r.streak); err != nil {
			log.Printf("streak sweep: scan failed: %v", err)
			return
		}
		pending = append(pending, r)
	}
	if err := rows.Err(); err != nil {
		log.Printf("streak sweep: read failed: %v", err)
		return
	}

	for _, r := range pending {
		_, err := w.notifications.Notify(ctx, r.userID, &notification.CreateRequest{
			Type:     notification.TypeStreakRisk,
			Title:    "Streak at risk!",
			Body:     fmt.Sprintf("Your %d-day streak on %q ends at midnight.", r.streak, r.title),
			Priority: notification.PriorityHigh,
			Data:     map[string]any{"habit_id": r.habitID.String(), "streak": r.streak},
		})
		if err != nil {
			log.Printf("streak sweep: notify failed for habit %s: %v", r.habitID, err)
		}
	}

	if len(pending) > 0 {
		log.Printf("streak sweep: sent %d reminders", len(pending))
	}
}
