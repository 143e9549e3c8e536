package services

import (
	"context"
	"time"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
)

// UserRegistrar persists a user record once.
type UserRegistrar interface {
	SaveIfAbsent(ctx context.Context, userID int64, username string, startDate time.Time) (bool, error)
}

// RegistrationService handles idempotent user registration.
type RegistrationService struct {
	writer UserRegistrar

	now func() time.Time
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(writer UserRegistrar) *RegistrationService {
	return &RegistrationService{writer: writer, now: time.Now}
}

// Register creates the user record on first contact. A repeated
// registration is a no-op reporting isNew=false, never an error.
func (s *RegistrationService) Register(ctx context.Context, userID int64, username string) (bool, error) {
	isNew, err := s.writer.SaveIfAbsent(ctx, userID, username, dateOnly(s.now()))
	if err != nil {
		logger.Log.Errorw("failed to register user", "user_id", userID, "error", err)
		return false, err
	}
	return isNew, nil
}
