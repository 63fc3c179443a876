package services

import (
	"context"
	"log"
	"sync"
	"time"

	"hustleHQAPI/internal/notification"
)

type PushNotificationProvider interface {
	SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error
}

// NotificationDispatcher fans queued notifications out to a small worker
// pool so push delivery never runs on a request path.
type NotificationDispatcher struct {
	service      *NotificationService
	pushProvider PushNotificationProvider
	workers      int
	jobQueue     chan *dispatchJob
	stopChan     chan struct{}
	wg           sync.WaitGroup
}

type dispatchJob struct {
	notification *notification.Notification
	preferences  *notification.Preferences
}

func NewNotificationDispatcher(service *NotificationService) *NotificationDispatcher {
	d := &NotificationDispatcher{
		service:  service,
		workers:  5,
		jobQueue: make(chan *dispatchJob, 100),
		stopChan: make(chan struct{}),
	}

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	go d.cleanupLoop()

	return d
}

// SetPushProvider injects the real push backend from main. Without one,
// notifications stay in-app only.
func (d *NotificationDispatcher) SetPushProvider(provider PushNotificationProvider) {
	d.pushProvider = provider
}

// Dispatch queues a notification for delivery. Drops the job if the queue
// stays full; the in-app row already exists either way.
func (d *NotificationDispatcher) Dispatch(notif *notification.Notification, prefs *notification.Preferences) {
	job := &dispatchJob{notification: notif, preferences: prefs}

	select {
	case d.jobQueue <- job:
	case <-time.After(5 * time.Second):
		log.Printf("Failed to queue notification %s: queue full", notif.ID)
	}
}

func (d *NotificationDispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case job := <-d.jobQueue:
			d.processJob(job)
		case <-d.stopChan:
			return
		}
	}
}

func (d *NotificationDispatcher) processJob(job *dispatchJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	notif := job.notification
	prefs := job.preferences

	if prefs.PushEnabled && len(prefs.DeviceTokens) > 0 && d.pushProvider != nil {
		err := d.pushProvider.SendPush(ctx, prefs.DeviceTokens, notif.Title, notif.Body, notif.Data)
		if err != nil {
			log.Printf("Push failed for user %s: %v", notif.UserID, err)
			d.markAsFailed(ctx, notif.ID.String())
			return
		}
	}

	d.markAsSent(ctx, notif.ID.String())
}

// Old read notifications are purged daily.
func (d *NotificationDispatcher) cleanupLoop() {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.performCleanup()
		case <-d.stopChan:
			return
		}
	}
}

func (d *NotificationDispatcher) performCleanup() {
	ctx := context.Background()

	result, err := d.service.db.Exec(ctx, `
	DELETE FROM notifications
	WHERE read_at < NOW() - INTERVAL '90 days'
	  AND status = 'read'
	`)
	if err != nil {
		log.Printf("Failed to cleanup old notifications: %v", err)
		return
	}
	if n := result.RowsAffected(); n > 0 {
		log.Printf("Cleaned up %d old notifications", n)
	}
}

func (d *NotificationDispatcher) markAsSent(ctx context.Context, notificationID string) {
	_, err := d.service.db.Exec(ctx,
		`UPDATE notifications SET status = 'sent', sent_at = NOW() WHERE id = $1`, notificationID)
	if err != nil {
		log.Printf("Failed to mark notification %s as sent: %v", notificationID, err)
	}
}

func (d *NotificationDispatcher) markAsFailed(ctx context.Context, notificationID string) {
	_, err := d.service.db.Exec(ctx,
		`UPDATE notifications SET status = 'failed' WHERE id = $1`, notificationID)
	if err != nil {
		log.Printf("Failed to mark notification %s as failed: %v", notificationID, err)
	}
}

// Stop drains the worker pool. Queued jobs that have not started are lost.
func (d *NotificationDispatcher) Stop() {
	log.Println("Stopping notification dispatcher...")
	close(d.stopChan)
	d.wg.Wait()
	log.Println("Notification dispatcher stopped")
}

// MockPushProvider logs instead of sending. Used in tests and when FCM
// credentials are absent.
type MockPushProvider struct{}

func (m *MockPushProvider) SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error {
	log.Printf("MOCK PUSH: %d devices: %s - %s", len(tokens), title, body)
	return nil
}
