package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hustleHQAPI/handlers"
	"hustleHQAPI/internal/profile"
	"hustleHQAPI/middleware"
	"hustleHQAPI/services"
	"hustleHQAPI/tests/helpers"
)

func newProfileFixture(t *testing.T) (*services.ProfileService, *services.StatsService, func()) {
	pool := helpers.SetupTestDB(t)

	notificationService := services.NewNotificationService(pool)
	profileService := services.NewProfileService(pool, notificationService)
	statsService := services.NewStatsService(pool)

	cleanup := func() {
		notificationService.Dispatcher().Stop()
		helpers.CleanupTestDB(t, pool)
	}
	return profileService, statsService, cleanup
}

func TestGetProfile_Authenticated(t *testing.T) {
	profileService, statsService, cleanup := newProfileFixture(t)
	defer cleanup()

	profileHandler := handlers.NewProfileHandler(profileService, statsService)

	clerkID := "user_test_" + time.Now().Format("20060102150405")
	ctx := context.Background()

	created, err := profileService.CreateProfile(ctx, &profile.CreateProfileRequest{
		ClerkID: clerkID,
		Email:   "testauth@example.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)

	// Simulate a request that passed the auth middleware.
	ctx = context.WithValue(req.Context(), middleware.ClerkIDKey, clerkID)
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	profileHandler.GetProfile(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response profile.Profile
	err = json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, created.ID, response.ID)
	assert.Equal(t, clerkID, response.ClerkID)
	assert.Equal(t, "testauth@example.com", response.Email)
	assert.Equal(t, "Newbie Hustler", response.HustleLevel)
}

func TestGetProfile_Unauthenticated(t *testing.T) {
	profileService, statsService, cleanup := newProfileFixture(t)
	defer cleanup()

	profileHandler := handlers.NewProfileHandler(profileService, statsService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rr := httptest.NewRecorder()

	profileHandler.GetProfile(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Contains(t, response["error"], "not authenticated")
}

func TestUpdateProfile_Authenticated(t *testing.T) {
	profileService, statsService, cleanup := newProfileFixture(t)
	defer cleanup()

	profileHandler := handlers.NewProfileHandler(profileService, statsService)

	clerkID := "user_test_" + time.Now().Format("20060102150405")
	ctx := context.Background()

	_, err := profileService.CreateProfile(ctx, &profile.CreateProfileRequest{
		ClerkID: clerkID,
		Email:   "testupdate@example.com",
	})
	require.NoError(t, err)

	updateData := `{"display_name": "Side Hustle Sam", "avatar_url": "https://example.com/new.jpg"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(updateData))
	req.Header.Set("Content-Type", "application/json")

	ctx = context.WithValue(req.Context(), middleware.ClerkIDKey, clerkID)
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	profileHandler.UpdateProfile(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response profile.Profile
	err = json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)

	require.NotNil(t, response.DisplayName)
	assert.Equal(t, "Side Hustle Sam", *response.DisplayName)
}

func TestDeleteProfile_Authenticated(t *testing.T) {
	profileService, statsService, cleanup := newProfileFixture(t)
	defer cleanup()

	profileHandler := handlers.NewProfileHandler(profileService, statsService)

	clerkID := "user_test_" + time.Now().Format("20060102150405")
	ctx := context.Background()

	_, err := profileService.CreateProfile(ctx, &profile.CreateProfileRequest{
		ClerkID: clerkID,
		Email:   "testdelete@example.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/profile", nil)
	ctx = context.WithValue(req.Context(), middleware.ClerkIDKey, clerkID)
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	profileHandler.DeleteProfile(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	_, err = profileService.GetProfileByClerkID(ctx, clerkID)
	assert.Error(t, err, "Profile should be deleted")
}
