package services

import (
	"context"

	"github.com/sgrinev/habit-streak-bot/internal/gateway"
	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

// UserLister enumerates all known users.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// Sender delivers one message to one user through the messaging gateway.
type Sender interface {
	Send(ctx context.Context, userID int64, text string, buttons []gateway.Button) error
}

// BroadcastService fans a message out to every known user except an
// excluded sender. Delivery is best effort: at most one attempt per
// recipient, failures logged and skipped.
type BroadcastService struct {
	users  UserLister
	sender Sender
}

// NewBroadcastService creates a new BroadcastService.
func NewBroadcastService(users UserLister, sender Sender) *BroadcastService {
	return &BroadcastService{users: users, sender: sender}
}

// Broadcast delivers text to all users except excludeUserID. A failed
// delivery to one recipient never aborts the rest of the fan-out.
func (s *BroadcastService) Broadcast(ctx context.Context, text string, excludeUserID int64) error {
	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users for broadcast", "error", err)
		return err
	}

	for _, user := range users {
		if user.UserID == excludeUserID {
			continue
		}

		if err := s.sender.Send(ctx, user.UserID, text, nil); err != nil {
			logger.Log.Errorw("broadcast delivery failed", "user_id", user.UserID, "error", err)
		}
	}

	return nil
}
