package services

import (
	"context"
	"errors"
	"time"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
)

var (
	// ErrInvalidReminderTime is returned for a malformed HH:MM argument.
	ErrInvalidReminderTime = errors.New("invalid reminder time, expected HH:MM")
)

// ReminderSettings is a user's current reminder configuration.
type ReminderSettings struct {
	Enabled bool
	Time    string
}

// ReminderPrefsWriter persists reminder preference changes.
type ReminderPrefsWriter interface {
	SetReminderEnabled(ctx context.Context, userID int64, enabled bool) error
	SetReminderTime(ctx context.Context, userID int64, reminderTime string) error
}

// SettingsService manages per-user reminder preferences.
type SettingsService struct {
	users  UserReader
	writer ReminderPrefsWriter
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(users UserReader, writer ReminderPrefsWriter) *SettingsService {
	return &SettingsService{users: users, writer: writer}
}

// Settings returns the user's current reminder configuration.
func (s *SettingsService) Settings(ctx context.Context, userID int64) (*ReminderSettings, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load reminder settings", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotRegistered
	}

	return &ReminderSettings{
		Enabled: user.ReminderEnabled,
		Time:    user.ReminderTime,
	}, nil
}

// Enable turns daily reminders on.
func (s *SettingsService) Enable(ctx context.Context, userID int64) (*ReminderSettings, error) {
	if err := s.writer.SetReminderEnabled(ctx, userID, true); err != nil {
		logger.Log.Errorw("failed to enable reminders", "user_id", userID, "error", err)
		return nil, err
	}
	return s.Settings(ctx, userID)
}

// Disable turns daily reminders off.
func (s *SettingsService) Disable(ctx context.Context, userID int64) (*ReminderSettings, error) {
	if err := s.writer.SetReminderEnabled(ctx, userID, false); err != nil {
		logger.Log.Errorw("failed to disable reminders", "user_id", userID, "error", err)
		return nil, err
	}
	return s.Settings(ctx, userID)
}

// SetTime stores a new reminder time of day. A malformed argument is
// rejected with ErrInvalidReminderTime and leaves state unchanged.
func (s *SettingsService) SetTime(ctx context.Context, userID int64, raw string) (*ReminderSettings, error) {
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		return nil, ErrInvalidReminderTime
	}
	normalized := parsed.Format("15:04")

	if err := s.writer.SetReminderTime(ctx, userID, normalized); err != nil {
		logger.Log.Errorw("failed to set reminder time", "user_id", userID, "time", normalized, "error", err)
		return nil, err
	}

	return s.Settings(ctx, userID)
}
