package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hustleHQAPI/handlers"
	"hustleHQAPI/services"
	"hustleHQAPI/tests/helpers"
)

func TestWebhookUserCreated(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	notificationService := services.NewNotificationService(pool)
	defer notificationService.Dispatcher().Stop()
	profileService := services.NewProfileService(pool, notificationService)
	webhookHandler := handlers.NewWebhookHandler(profileService)

	// Disable signature verification for testing
	os.Setenv("CLERK_WEBHOOK_SECRET", "")
	defer os.Unsetenv("CLERK_WEBHOOK_SECRET")

	clerkID := "user_test_" + time.Now().Format("20060102150405")
	payload := helpers.MockClerkWebhookPayload("user.created", clerkID)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	webhookHandler.HandleClerkWebhook(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "Expected status 200")

	var response map[string]bool
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.True(t, response["success"])

	ctx := context.Background()
	created, err := profileService.GetProfileByClerkID(ctx, clerkID)
	require.NoError(t, err, "Profile should be created")
	assert.Equal(t, clerkID, created.ClerkID)
	assert.Equal(t, "test.user@example.com", created.Email)
	assert.Equal(t, "Newbie Hustler", created.HustleLevel)
	assert.Equal(t, 0, created.ProductivityScore)
}

func TestWebhookUserCreatedIsIdempotent(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	notificationService := services.NewNotificationService(pool)
	defer notificationService.Dispatcher().Stop()
	profileService := services.NewProfileService(pool, notificationService)
	webhookHandler := handlers.NewWebhookHandler(profileService)

	os.Setenv("CLERK_WEBHOOK_SECRET", "")
	defer os.Unsetenv("CLERK_WEBHOOK_SECRET")

	clerkID := "user_test_dup_" + time.Now().Format("20060102150405")
	payload := helpers.MockClerkWebhookPayload("user.created", clerkID)

	// Clerk retries webhooks; a replay must not create a second profile or
	// reset the first one.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/clerk", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		webhookHandler.HandleClerkWebhook(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	ctx := context.Background()
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM profiles WHERE clerk_id = $1", clerkID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWebhookUserDeleted(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	notificationService := services.NewNotificationService(pool)
	defer notificationService.Dispatcher().Stop()
	profileService := services.NewProfileService(pool, notificationService)
	webhookHandler := handlers.NewWebhookHandler(profileService)

	os.Setenv("CLERK_WEBHOOK_SECRET", "")
	defer os.Unsetenv("CLERK_WEBHOOK_SECRET")

	clerkID := "user_test_del_" + time.Now().Format("20060102150405")

	createReq := httptest.NewRequest(http.MethodPost, "/webhooks/clerk",
		bytes.NewReader(helpers.MockClerkWebhookPayload("user.created", clerkID)))
	rr := httptest.NewRecorder()
	webhookHandler.HandleClerkWebhook(rr, createReq)
	require.Equal(t, http.StatusOK, rr.Code)

	deleteReq := httptest.NewRequest(http.MethodPost, "/webhooks/clerk",
		bytes.NewReader(helpers.MockClerkWebhookPayload("user.deleted", clerkID)))
	rr = httptest.NewRecorder()
	webhookHandler.HandleClerkWebhook(rr, deleteReq)
	require.Equal(t, http.StatusOK, rr.Code)

	_, err := profileService.GetProfileByClerkID(context.Background(), clerkID)
	assert.Error(t, err, "Profile should be gone")
}
