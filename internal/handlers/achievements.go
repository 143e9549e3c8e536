package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

// AchievementsLister defines the interface that the service must implement.
type AchievementsLister interface {
	List(ctx context.Context, userID int64) ([]models.AchievementDB, error)
}

// EarnedAchievement represents one unlocked achievement
// swagger:model EarnedAchievement
type EarnedAchievement struct {
	// Achievement kind, e.g. 7_days
	Kind string `json:"kind"`

	// Human-readable label
	Label string `json:"label"`

	// Unlock date, YYYY-MM-DD
	AchievedDate string `json:"achieved_date"`
}

// UpcomingAchievement represents a milestone not yet reached
// swagger:model UpcomingAchievement
type UpcomingAchievement struct {
	// Achievement kind, e.g. 28_days
	Kind string `json:"kind"`

	// Human-readable label
	Label string `json:"label"`

	// Streak length required to unlock
	Threshold int `json:"threshold"`
}

// AchievementsResponse represents the achievements overview
// swagger:model AchievementsResponse
type AchievementsResponse struct {
	// Unlocked achievements in unlock order
	Earned []EarnedAchievement `json:"earned"`

	// Milestones still ahead
	Upcoming []UpcomingAchievement `json:"upcoming"`
}

// AchievementsErrorResponse represents an error response for achievements
// swagger:model AchievementsErrorResponse
type AchievementsErrorResponse struct {
	// Error message
	// default: Invalid user_id
	Error string `json:"error"`
}

var achievementKindLabels = map[models.AchievementKind]string{
	models.Achievement3Days:  "🥉 3 days without a miss",
	models.Achievement7Days:  "🥈 7 days without a miss",
	models.Achievement14Days: "🥇 14 days without a miss",
	models.Achievement28Days: "🏆 28 days without a miss",
}

func achievementLabel(kind models.AchievementKind) string {
	if label, ok := achievementKindLabels[kind]; ok {
		return label
	}
	return string(kind)
}

// NewAchievementsHandler returns an HTTP handler for the achievements command.
// @Summary Achievements overview
// @Description Lists the user's unlocked achievements and the milestones still ahead.
// @Tags bot
// @Produce json
// @Param user_id query int true "Messenger user identifier"
// @Success 200 {object} handlers.AchievementsResponse "Achievements"
// @Failure 400 {object} handlers.AchievementsErrorResponse "Invalid user_id"
// @Router /achievements [get]
// @Security BearerAuth
func NewAchievementsHandler(svc AchievementsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
		if err != nil || userID <= 0 {
			logger.Log.Warnw("invalid achievements user", "user_id", r.URL.Query().Get("user_id"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AchievementsErrorResponse{Error: "Invalid user_id"})
			return
		}

		achievements, err := svc.List(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list achievements", "user_id", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AchievementsErrorResponse{Error: "Internal server error"})
			return
		}

		earnedKinds := make(map[models.AchievementKind]struct{}, len(achievements))
		earned := make([]EarnedAchievement, 0, len(achievements))
		for _, a := range achievements {
			earnedKinds[a.Kind] = struct{}{}
			earned = append(earned, EarnedAchievement{
				Kind:         string(a.Kind),
				Label:        achievementLabel(a.Kind),
				AchievedDate: a.AchievedDate.Format("2006-01-02"),
			})
		}

		upcoming := make([]UpcomingAchievement, 0, len(models.AchievementTiers))
		for _, tier := range models.AchievementTiers {
			if _, ok := earnedKinds[tier.Kind]; ok {
				continue
			}
			upcoming = append(upcoming, UpcomingAchievement{
				Kind:      string(tier.Kind),
				Label:     achievementLabel(tier.Kind),
				Threshold: tier.Threshold,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AchievementsResponse{Earned: earned, Upcoming: upcoming})
	}
}
