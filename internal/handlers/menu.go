package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sgrinev/habit-streak-bot/internal/gateway"
	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

// MenuSessionWriter records the user's menu position.
type MenuSessionWriter interface {
	SetMenuState(ctx context.Context, userID int64, state models.MenuState) error
}

// MenuRequest represents the JSON body for a menu transition
// swagger:model MenuRequest
type MenuRequest struct {
	// Messenger user identifier
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`
}

// MenuResponse represents a menu screen
// swagger:model MenuResponse
type MenuResponse struct {
	// Text shown to the user
	Message string `json:"message"`

	// Choice buttons the gateway renders under the message
	Buttons []gateway.Button `json:"buttons"`
}

// MenuErrorResponse represents an error response for menu transitions
// swagger:model MenuErrorResponse
type MenuErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

const helpText = "Command List:\n\n" +
	"/start - Start working with the bot\n" +
	"/checkin - Check in for today\n" +
	"/stats - Show your statistics\n" +
	"/task - Get task of the day\n" +
	"/motivation - Get a motivational quote\n" +
	"/emergency - Emergency help when tempted\n" +
	"/achievements - View your achievements\n" +
	"/reminder - Configure daily reminders\n" +
	"/chat - Join the community chat\n" +
	"/help - Show this help"

const emergencyText = "🆘 Emergency Help\n\n" +
	"Feeling tempted? We're here to help you!\n" +
	"Choose a type of help below:"

// NewHelpHandler returns an HTTP handler for the help command.
// @Summary Help menu
// @Description Returns the command list and moves the user to the help menu.
// @Tags bot
// @Accept json
// @Produce json
// @Param request body handlers.MenuRequest true "Menu Request"
// @Success 200 {object} handlers.MenuResponse "Help menu"
// @Failure 400 {object} handlers.MenuErrorResponse "Invalid request body"
// @Router /help [post]
// @Security BearerAuth
func NewHelpHandler(sessions MenuSessionWriter) http.HandlerFunc {
	buttons := []gateway.Button{
		{ID: "back_to_menu", Label: "◀️ Back to Menu"},
	}

	return newMenuHandler(sessions, models.MenuStateHelp, helpText, buttons)
}

// NewEmergencyMenuHandler returns an HTTP handler for the emergency help command.
// @Summary Emergency help menu
// @Description Returns the coping category choices and moves the user to the emergency help menu.
// @Tags bot
// @Accept json
// @Produce json
// @Param request body handlers.MenuRequest true "Menu Request"
// @Success 200 {object} handlers.MenuResponse "Emergency menu"
// @Failure 400 {object} handlers.MenuErrorResponse "Invalid request body"
// @Router /emergency [post]
// @Security BearerAuth
func NewEmergencyMenuHandler(sessions MenuSessionWriter) http.HandlerFunc {
	buttons := []gateway.Button{
		{ID: "emergency_tip_physical", Label: "💪 Physical Exercise"},
		{ID: "emergency_tip_mental", Label: "🧠 Mental Technique"},
		{ID: "emergency_tip_shower", Label: "🚿 Cold Shower"},
		{ID: "emergency_tip_distraction", Label: "🔄 Distraction"},
		{ID: "back_to_menu", Label: "◀️ Back to Menu"},
	}

	return newMenuHandler(sessions, models.MenuStateEmergency, emergencyText, buttons)
}

func newMenuHandler(sessions MenuSessionWriter, state models.MenuState, text string, buttons []gateway.Button) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req MenuRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 {
			logger.Log.Warnw("invalid menu request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MenuErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := sessions.SetMenuState(ctx, req.UserID, state); err != nil {
			logger.Log.Errorw("failed to record menu state", "user_id", req.UserID, "state", state, "error", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MenuResponse{Message: text, Buttons: buttons})
	}
}
