package handlers

import (
	"context"
	"net/http"
	"time"

	"hustleHQAPI/middleware"
	"hustleHQAPI/services"
)

type AchievementHandler struct {
	achievementService *services.AchievementService
}

func NewAchievementHandler(achievementService *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

func (h *AchievementHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	achievements, err := h.achievementService.GetAchievements(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get achievements")
		return
	}

	respondWithJSON(w, http.StatusOK, achievements)
}

// CheckAchievements re-evaluates the catalog and returns anything newly
// unlocked. Safe to call as often as the client likes.
func (h *AchievementHandler) CheckAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	unlocked, err := h.achievementService.CheckAndUnlockByClerkID(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to check achievements")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"unlocked": unlocked,
		"count":    len(unlocked),
	})
}
