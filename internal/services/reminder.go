package services

import (
	"context"
	"time"

	"github.com/sgrinev/habit-streak-bot/internal/content"
	"github.com/sgrinev/habit-streak-bot/internal/logger"
)

// ReminderService delivers daily reminders to users whose configured
// reminder time matches the current minute.
type ReminderService struct {
	users  UserLister
	sender Sender
}

// NewReminderService creates a new ReminderService.
func NewReminderService(users UserLister, sender Sender) *ReminderService {
	return &ReminderService{users: users, sender: sender}
}

// Tick scans all users once and sends a reminder to everyone due at
// now's minute. The match is an exact HH:MM comparison: a tick that
// skips a minute skips that minute's reminders, with no catch-up.
// Delivery failures are isolated per recipient. Returns the number of
// reminders delivered.
func (s *ReminderService) Tick(ctx context.Context, now time.Time) (int, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users for reminder tick", "error", err)
		return 0, err
	}

	current := now.Format("15:04")
	delivered := 0

	for _, user := range users {
		if !user.ReminderEnabled || user.ReminderTime != current {
			continue
		}

		text := "📝 Daily Reminder\n\n" + content.RandomQuote() + "\n\nDon't forget to check in today!"

		if err := s.sender.Send(ctx, user.UserID, text, nil); err != nil {
			logger.Log.Errorw("reminder delivery failed", "user_id", user.UserID, "error", err)
			continue
		}
		delivered++
	}

	return delivered, nil
}
