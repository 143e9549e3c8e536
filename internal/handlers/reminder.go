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

// ReminderConfigurer defines the interface that the service must implement.
type ReminderConfigurer interface {
	Settings(ctx context.Context, userID int64) (*services.ReminderSettings, error)
	Enable(ctx context.Context, userID int64) (*services.ReminderSettings, error)
	Disable(ctx context.Context, userID int64) (*services.ReminderSettings, error)
	SetTime(ctx context.Context, userID int64, raw string) (*services.ReminderSettings, error)
}

// ReminderToggleRequest represents the JSON body for toggling reminders
// swagger:model ReminderToggleRequest
type ReminderToggleRequest struct {
	// Messenger user identifier
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`
}

// ReminderTimeRequest represents the JSON body for changing the reminder time
// swagger:model ReminderTimeRequest
type ReminderTimeRequest struct {
	// Messenger user identifier
	// required: true
	// default: 123456789
	UserID int64 `json:"user_id"`

	// Time of day, HH:MM
	// required: true
	// default: 20:00
	Time string `json:"time"`
}

// ReminderSettingsResponse represents the reminder configuration
// swagger:model ReminderSettingsResponse
type ReminderSettingsResponse struct {
	// Whether daily reminders are on
	Enabled bool `json:"enabled"`

	// Time of day, HH:MM
	Time string `json:"time"`
}

// ReminderErrorResponse represents an error response for reminder settings
// swagger:model ReminderErrorResponse
type ReminderErrorResponse struct {
	// Error message
	// default: Invalid reminder time
	Error string `json:"error"`
}

func writeReminderSettings(w http.ResponseWriter, settings *services.ReminderSettings) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ReminderSettingsResponse{
		Enabled: settings.Enabled,
		Time:    settings.Time,
	})
}

func writeReminderError(w http.ResponseWriter, userID int64, err error) {
	if errors.Is(err, services.ErrUserNotRegistered) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ReminderErrorResponse{Error: "User is not registered"})
		return
	}
	logger.Log.Errorw("reminder settings operation failed", "user_id", userID, "error", err)
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ReminderErrorResponse{Error: "Internal server error"})
}

// NewReminderSettingsHandler returns an HTTP handler for reading reminder settings.
// @Summary Reminder settings
// @Description Returns the user's reminder configuration.
// @Tags reminders
// @Produce json
// @Param user_id query int true "Messenger user identifier"
// @Success 200 {object} handlers.ReminderSettingsResponse "Settings"
// @Failure 400 {object} handlers.ReminderErrorResponse "Invalid user_id"
// @Failure 404 {object} handlers.ReminderErrorResponse "User is not registered"
// @Router /reminder [get]
// @Security BearerAuth
func NewReminderSettingsHandler(svc ReminderConfigurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
		if err != nil || userID <= 0 {
			logger.Log.Warnw("invalid reminder settings user", "user_id", r.URL.Query().Get("user_id"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReminderErrorResponse{Error: "Invalid user_id"})
			return
		}

		settings, err := svc.Settings(ctx, userID)
		if err != nil {
			writeReminderError(w, userID, err)
			return
		}

		writeReminderSettings(w, settings)
	}
}

// NewReminderOnHandler returns an HTTP handler that enables daily reminders.
// @Summary Enable reminders
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body handlers.ReminderToggleRequest true "Toggle Request"
// @Success 200 {object} handlers.ReminderSettingsResponse "Settings"
// @Failure 400 {object} handlers.ReminderErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ReminderErrorResponse "User is not registered"
// @Router /reminder/on [post]
// @Security BearerAuth
func NewReminderOnHandler(svc ReminderConfigurer) http.HandlerFunc {
	return newReminderToggleHandler(svc.Enable)
}

// NewReminderOffHandler returns an HTTP handler that disables daily reminders.
// @Summary Disable reminders
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body handlers.ReminderToggleRequest true "Toggle Request"
// @Success 200 {object} handlers.ReminderSettingsResponse "Settings"
// @Failure 400 {object} handlers.ReminderErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ReminderErrorResponse "User is not registered"
// @Router /reminder/off [post]
// @Security BearerAuth
func NewReminderOffHandler(svc ReminderConfigurer) http.HandlerFunc {
	return newReminderToggleHandler(svc.Disable)
}

func newReminderToggleHandler(toggle func(ctx context.Context, userID int64) (*services.ReminderSettings, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req ReminderToggleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 {
			logger.Log.Warnw("invalid reminder toggle request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReminderErrorResponse{Error: "Invalid request body"})
			return
		}

		settings, err := toggle(ctx, req.UserID)
		if err != nil {
			writeReminderError(w, req.UserID, err)
			return
		}

		writeReminderSettings(w, settings)
	}
}

// NewReminderTimeHandler returns an HTTP handler that changes the reminder time.
// @Summary Set reminder time
// @Description Stores a new HH:MM reminder time. A malformed value is rejected and the stored time stays unchanged.
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body handlers.ReminderTimeRequest true "Time Request"
// @Success 200 {object} handlers.ReminderSettingsResponse "Settings"
// @Failure 400 {object} handlers.ReminderErrorResponse "Invalid reminder time"
// @Failure 404 {object} handlers.ReminderErrorResponse "User is not registered"
// @Router /reminder/time [post]
// @Security BearerAuth
func NewReminderTimeHandler(svc ReminderConfigurer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req ReminderTimeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 {
			logger.Log.Warnw("invalid reminder time request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReminderErrorResponse{Error: "Invalid request body"})
			return
		}

		settings, err := svc.SetTime(ctx, req.UserID, req.Time)
		if err != nil {
			if errors.Is(err, services.ErrInvalidReminderTime) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ReminderErrorResponse{Error: "Invalid reminder time"})
				return
			}
			writeReminderError(w, req.UserID, err)
			return
		}

		writeReminderSettings(w, settings)
	}
}
