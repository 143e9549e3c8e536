package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/services"
)

// StatsReader defines the interface that the service must implement.
type StatsReader interface {
	Stats(ctx context.Context, userID int64) (*services.StatsResult, error)
}

// StatsResponse represents a user's progress summary
// swagger:model StatsResponse
type StatsResponse struct {
	// Registration date, YYYY-MM-DD
	StartDate string `json:"start_date"`

	// Current streak in days
	CurrentStreak int `json:"current_streak"`

	// Longest streak ever reached
	LongestStreak int `json:"longest_streak"`

	// Days since registration, inclusive
	TotalDays int `json:"total_days"`
}

// StatsErrorResponse represents an error response for stats
// swagger:model StatsErrorResponse
type StatsErrorResponse struct {
	// Error message
	// default: User is not registered
	Error string `json:"error"`
}

// NewStatsHandler returns an HTTP handler for the statistics command.
// @Summary Progress statistics
// @Description Returns the user's start date, current and longest streak and total tracked days.
// @Tags bot
// @Produce json
// @Param user_id query int true "Messenger user identifier"
// @Success 200 {object} handlers.StatsResponse "Statistics"
// @Failure 400 {object} handlers.StatsErrorResponse "Invalid user_id"
// @Failure 404 {object} handlers.StatsErrorResponse "User is not registered"
// @Router /stats [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
		if err != nil || userID <= 0 {
			logger.Log.Warnw("invalid stats user", "user_id", r.URL.Query().Get("user_id"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(StatsErrorResponse{Error: "Invalid user_id"})
			return
		}

		stats, err := svc.Stats(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotRegistered) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(StatsErrorResponse{Error: "User is not registered"})
				return
			}
			logger.Log.Errorw("failed to load stats", "user_id", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StatsErrorResponse{Error: "Internal server error"})
			return
		}

		resp := StatsResponse{
			StartDate:     stats.StartDate.Format("2006-01-02"),
			CurrentStreak: stats.CurrentStreak,
			LongestStreak: stats.LongestStreak,
			TotalDays:     stats.TotalDays,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
