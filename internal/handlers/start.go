package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

// StartRegistrar defines the interface that the service must implement.
type StartRegistrar interface {
	Register(ctx context.Context, userID int64, username string) (bool, error)
}

// StartSessionWriter records the user's menu position.
type StartSessionWriter interface {
	SetMenuState(ctx context.Context, userID int64, state models.MenuState) error
}

// StartRequest represents the JSON body for the start command
// swagger:model StartRequest
type StartRequest struct {
	// Messenger user identifier
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`

	// Display name
	// required: true
	// default: alice
	Username string `json:"username"`
}

// StartResponse represents a successful start response
// swagger:model StartResponse
type StartResponse struct {
	// Greeting shown to the user
	Message string `json:"message"`

	// True when this call created the user
	IsNew bool `json:"is_new"`
}

// StartErrorResponse represents an error response for the start command
// swagger:model StartErrorResponse
type StartErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

const firstStartMessage = "👋 Hello, %s! I'm a bot that will help you build your streak and " +
	"become the best version of yourself.\n\n" +
	"🔰 What I can do:\n" +
	"✅ Daily check-ins to track progress\n" +
	"📝 Daily tasks for personal growth\n" +
	"🖼 Motivational quotes\n" +
	"🆘 Emergency help in moments of weakness\n" +
	"🏆 Achievement system\n\n" +
	"Use /help to get a list of commands."

const repeatStartMessage = "Welcome back, %s! Glad to see you again.\n\n" +
	"Use /help to get a list of commands or use the menu below."

// NewStartHandler returns an HTTP handler for the start command.
// @Summary Register a user
// @Description Creates the user record on first contact and resets the menu position. Repeated calls are no-ops.
// @Tags bot
// @Accept json
// @Produce json
// @Param request body handlers.StartRequest true "Start Request"
// @Success 200 {object} handlers.StartResponse "User already registered"
// @Success 201 {object} handlers.StartResponse "User registered"
// @Failure 400 {object} handlers.StartErrorResponse "Invalid request body"
// @Router /start [post]
// @Security BearerAuth
func NewStartHandler(
	svc StartRegistrar,
	sessions StartSessionWriter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req StartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode start request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(StartErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID <= 0 || req.Username == "" {
			logger.Log.Warnw("invalid start request", "user_id", req.UserID, "username", req.Username)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(StartErrorResponse{Error: "Invalid user_id or username"})
			return
		}

		isNew, err := svc.Register(ctx, req.UserID, req.Username)
		if err != nil {
			logger.Log.Errorw("failed to register user", "user_id", req.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StartErrorResponse{Error: "Internal server error"})
			return
		}

		if err := sessions.SetMenuState(ctx, req.UserID, models.MenuStateMain); err != nil {
			logger.Log.Errorw("failed to reset menu state", "user_id", req.UserID, "error", err)
		}

		message := fmt.Sprintf(repeatStartMessage, req.Username)
		status := http.StatusOK
		if isNew {
			message = fmt.Sprintf(firstStartMessage, req.Username)
			status = http.StatusCreated
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(StartResponse{Message: message, IsNew: isNew})
	}
}
