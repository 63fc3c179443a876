package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hustleHQAPI/internal/goal"
	"hustleHQAPI/internal/profile"
	"hustleHQAPI/services"
	"hustleHQAPI/tests/helpers"
)

// End-to-end: one task completion moves the score, the daily tally, today's
// challenge and the achievement catalog in a single call.
func TestTaskCompletionFanOut(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	notificationService := services.NewNotificationService(pool)
	defer notificationService.Dispatcher().Stop()
	profileService := services.NewProfileService(pool, notificationService)
	statsService := services.NewStatsService(pool)
	achievementService := services.NewAchievementService(pool, profileService, notificationService)
	challengeService := services.NewChallengeService(pool, profileService, notificationService)
	goalService := services.NewGoalService(pool, profileService, notificationService)
	activityService := services.NewActivityService(pool, statsService, profileService, challengeService, goalService, achievementService)

	ctx := context.Background()
	clerkID := "user_test_flow_" + time.Now().Format("20060102150405")
	_, err := profileService.CreateProfile(ctx, &profile.CreateProfileRequest{
		ClerkID: clerkID,
		Email:   "test.flow@example.com",
	})
	require.NoError(t, err)

	updated, err := activityService.RecordTaskCompletion(ctx, clerkID, time.Now())
	require.NoError(t, err)

	// One task is worth 10 base points; the first_task achievement adds its
	// own bonus on top.
	assert.GreaterOrEqual(t, updated.ProductivityScore, 10)

	today, err := statsService.GetToday(ctx, clerkID)
	require.NoError(t, err)
	assert.Equal(t, 1, today.TasksCompleted)

	achievements, err := achievementService.GetAchievements(ctx, clerkID)
	require.NoError(t, err)
	var firstTaskUnlocked bool
	for _, a := range achievements {
		if a.Code == "first_task" {
			firstTaskUnlocked = a.Unlocked
		}
	}
	assert.True(t, firstTaskUnlocked, "first_task should unlock on the first completion")
}

func TestWeeklyGoalCompletionAwardsBonus(t *testing.T) {
	pool := helpers.SetupTestDB(t)
	defer helpers.CleanupTestDB(t, pool)

	notificationService := services.NewNotificationService(pool)
	defer notificationService.Dispatcher().Stop()
	profileService := services.NewProfileService(pool, notificationService)
	goalService := services.NewGoalService(pool, profileService, notificationService)

	ctx := context.Background()
	clerkID := "user_test_goal_" + time.Now().Format("20060102150405")
	created, err := profileService.CreateProfile(ctx, &profile.CreateProfileRequest{
		ClerkID: clerkID,
		Email:   "test.goal@example.com",
	})
	require.NoError(t, err)
	baseScore := created.ProductivityScore

	g, err := goalService.CreateGoal(ctx, clerkID, &goal.CreateGoalRequest{
		Title:       "Ship three things",
		GoalType:    goal.TypeTasks,
		TargetValue: 3,
	})
	require.NoError(t, err)
	assert.False(t, g.IsCompleted)

	g, err = goalService.UpdateProgress(ctx, clerkID, g.ID, 3)
	require.NoError(t, err)
	assert.True(t, g.IsCompleted)

	// Completion latches: pushing the value past the target again changes
	// nothing and must not award a second bonus.
	g, err = goalService.UpdateProgress(ctx, clerkID, g.ID, 5)
	require.NoError(t, err)
	assert.True(t, g.IsCompleted)
	assert.Equal(t, 3.0, g.CurrentValue)

	after, err := profileService.GetProfileByClerkID(ctx, clerkID)
	require.NoError(t, err)
	assert.Equal(t, baseScore+50, after.ProductivityScore)
}
