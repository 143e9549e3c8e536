package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
	"github.com/sgrinev/habit-streak-bot/internal/services"
)

// CheckInProcessor defines the interface that the service must implement.
type CheckInProcessor interface {
	CheckIn(ctx context.Context, userID int64) (*services.CheckInResult, error)
}

// CheckInRequest represents the JSON body for a check-in
// swagger:model CheckInRequest
type CheckInRequest struct {
	// Messenger user identifier
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`
}

// CheckInResponse represents a check-in outcome
// swagger:model CheckInResponse
type CheckInResponse struct {
	// Outcome: accepted or already_checked_in
	Status string `json:"status"`

	// Streak after the check-in
	Streak int `json:"streak"`

	// Longest streak ever reached
	LongestStreak int `json:"longest_streak"`

	// Achievements unlocked by this check-in
	NewAchievements []string `json:"new_achievements"`

	// True when the 28-day reward was just earned
	Reward bool `json:"reward"`

	// Text shown to the user
	Message string `json:"message"`
}

// CheckInErrorResponse represents an error response for a check-in
// swagger:model CheckInErrorResponse
type CheckInErrorResponse struct {
	// Error message
	// default: User is not registered
	Error string `json:"error"`
}

// NewCheckInHandler returns an HTTP handler for the daily check-in.
// @Summary Daily check-in
// @Description Records today's check-in, advances or resets the streak and reports newly unlocked achievements.
// @Tags bot
// @Accept json
// @Produce json
// @Param request body handlers.CheckInRequest true "Check-In Request"
// @Success 200 {object} handlers.CheckInResponse "Check-in processed"
// @Failure 400 {object} handlers.CheckInErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.CheckInErrorResponse "User is not registered"
// @Router /checkin [post]
// @Security BearerAuth
func NewCheckInHandler(svc CheckInProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CheckInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode check-in request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckInErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID <= 0 {
			logger.Log.Warnw("invalid check-in user", "user_id", req.UserID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckInErrorResponse{Error: "Invalid user_id"})
			return
		}

		result, err := svc.CheckIn(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotRegistered) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CheckInErrorResponse{Error: "User is not registered"})
				return
			}
			logger.Log.Errorw("failed to process check-in", "user_id", req.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CheckInErrorResponse{Error: "Internal server error"})
			return
		}

		resp := CheckInResponse{
			Status:          string(result.Status),
			Streak:          result.Streak,
			LongestStreak:   result.LongestStreak,
			NewAchievements: achievementLabels(result.Unlocked),
			Reward:          result.Reward,
			Message:         checkInMessage(result),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// checkInMessage renders the check-in outcome as the chat text the
// gateway forwards to the user.
func checkInMessage(result *services.CheckInResult) string {
	var b strings.Builder

	switch {
	case result.Status == services.CheckInAlreadyDone:
		fmt.Fprintf(&b, "You have already checked in today! Current streak: %d days.", result.Streak)
	case result.Streak > 1:
		fmt.Fprintf(&b, "✅ Great! Your streak: %d days in a row!", result.Streak)
	default:
		b.WriteString("✅ Check-in accepted. Current streak: 1 day.")
	}

	if len(result.Unlocked) > 0 {
		b.WriteString("\n\n🏆 New Achievements:\n")
		b.WriteString(strings.Join(achievementLabels(result.Unlocked), "\n"))
	}

	if result.Reward {
		b.WriteString("\n\n🎁 Congratulations on reaching 28 days! Your reward is on the way.")
	}

	return b.String()
}

func achievementLabels(kinds []models.AchievementKind) []string {
	labels := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		labels = append(labels, achievementLabel(kind))
	}
	return labels
}
