package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"hustleHQAPI/middleware"
	"hustleHQAPI/services"
)

// ActivityHandler receives productivity events from the client apps. Each
// event fans out server-side: daily stats, score, challenges, weekly goals
// and achievement checks all move from one POST.
type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

type taskCompletedRequest struct {
	CompletedAt *time.Time `json:"completed_at"`
}

type transactionRequest struct {
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

type focusSessionRequest struct {
	Minutes int `json:"minutes"`
}

func (h *ActivityHandler) TaskCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req taskCompletedRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	p, err := h.activityService.RecordTaskCompletion(ctx, clerkID, completedAt)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to record task completion")
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *ActivityHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.activityService.RecordTransaction(ctx, clerkID, req.Amount, req.Type)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *ActivityHandler) FocusSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req focusSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.activityService.RecordFocusSession(ctx, clerkID, req.Minutes)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *ActivityHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.activityService.RecordLogin(ctx, clerkID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to record login")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Login recorded"})
}
