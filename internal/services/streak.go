package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

var (
	// ErrUserNotRegistered is returned when an operation targets an unknown user.
	ErrUserNotRegistered = errors.New("user is not registered")
)

// CheckInStatus describes the outcome of a check-in attempt.
type CheckInStatus string

const (
	// CheckInAccepted means the check-in was recorded.
	CheckInAccepted CheckInStatus = "accepted"
	// CheckInAlreadyDone means the user already checked in today; state is unchanged.
	CheckInAlreadyDone CheckInStatus = "already_checked_in"
)

// CheckInResult is the outcome of a check-in attempt.
type CheckInResult struct {
	Status        CheckInStatus
	Streak        int
	LongestStreak int
	Unlocked      []models.AchievementKind // Achievements unlocked by this check-in
	Reward        bool                     // True when the 28-day tier was just unlocked
}

// StatsResult summarizes a user's progress.
type StatsResult struct {
	StartDate     time.Time
	CurrentStreak int
	LongestStreak int
	TotalDays     int // Days since registration, inclusive
}

// UserReader defines the user reads the streak engine needs.
type UserReader interface {
	Get(ctx context.Context, userID int64) (*models.UserDB, error)
	GetForUpdate(ctx context.Context, userID int64) (*models.UserDB, error)
}

// CheckInWriter persists a check-in transition.
type CheckInWriter interface {
	SaveCheckIn(ctx context.Context, userID int64, lastCheckIn time.Time, streak int) error
}

// AchievementEvaluator derives newly unlocked achievements from a streak value.
type AchievementEvaluator interface {
	Evaluate(ctx context.Context, userID int64, streak int, today time.Time) ([]models.AchievementKind, error)
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the writer
}

// StreakService implements the check-in state machine.
type StreakService struct {
	users       UserReader
	writer      CheckInWriter
	evaluator   AchievementEvaluator
	eventWriter EventWriter

	now func() time.Time
}

// NewStreakService creates a new StreakService.
func NewStreakService(users UserReader, writer CheckInWriter, evaluator AchievementEvaluator, eventWriter EventWriter) *StreakService {
	return &StreakService{
		users:       users,
		writer:      writer,
		evaluator:   evaluator,
		eventWriter: eventWriter,
		now:         time.Now,
	}
}

// dateOnly truncates a timestamp to its calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole days from a to b at date granularity.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

// applyCheckIn computes the streak transition for a check-in happening
// on the given day. It is pure: no clock, no storage.
//
// A nil lastCheckIn means the user has never checked in; the first
// check-in always starts a streak of 1. A negative delta (stored
// check-in date in the future) is accepted without touching the streak,
// a deliberately permissive fallback for clock skew.
func applyCheckIn(lastCheckIn *time.Time, streak int, today time.Time) (CheckInStatus, int) {
	if lastCheckIn == nil {
		return CheckInAccepted, 1
	}

	switch delta := daysBetween(*lastCheckIn, today); {
	case delta == 0:
		return CheckInAlreadyDone, streak
	case delta == 1:
		return CheckInAccepted, streak + 1
	case delta > 1:
		// Missed at least one day: the streak restarts at 1, never 0.
		return CheckInAccepted, 1
	default:
		return CheckInAccepted, streak
	}
}

// CheckIn records today's check-in for the user and returns the
// resulting streak state plus any newly unlocked achievements.
//
// The caller must run it inside a request-scoped transaction: the row
// lock taken by GetForUpdate is what serializes concurrent check-ins
// from the same user.
func (s *StreakService) CheckIn(ctx context.Context, userID int64) (*CheckInResult, error) {
	user, err := s.users.GetForUpdate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for check-in", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotRegistered
	}

	today := dateOnly(s.now())

	status, newStreak := applyCheckIn(user.LastCheckIn, user.CurrentStreak, today)
	if status == CheckInAlreadyDone {
		return &CheckInResult{
			Status:        CheckInAlreadyDone,
			Streak:        user.CurrentStreak,
			LongestStreak: user.LongestStreak,
		}, nil
	}

	if err := s.writer.SaveCheckIn(ctx, userID, today, newStreak); err != nil {
		logger.Log.Errorw("failed to save check-in", "user_id", userID, "streak", newStreak, "error", err)
		return nil, err
	}

	unlocked, err := s.evaluator.Evaluate(ctx, userID, newStreak, today)
	if err != nil {
		logger.Log.Errorw("failed to evaluate achievements", "user_id", userID, "streak", newStreak, "error", err)
		return nil, err
	}

	reward := false
	for _, kind := range unlocked {
		if kind == models.Achievement28Days {
			reward = true
		}
	}

	longest := user.LongestStreak
	if newStreak > longest {
		longest = newStreak
	}

	s.publishCheckIn(ctx, models.CheckInEvent{
		EventID:   uuid.NewString(),
		Timestamp: s.now().Unix(),
		UserID:    userID,
		Date:      today.Format("2006-01-02"),
		Streak:    newStreak,
		Unlocked:  kindsToStrings(unlocked),
		Reward:    reward,
	})

	return &CheckInResult{
		Status:        CheckInAccepted,
		Streak:        newStreak,
		LongestStreak: longest,
		Unlocked:      unlocked,
		Reward:        reward,
	}, nil
}

// Stats returns the user's progress summary.
func (s *StreakService) Stats(ctx context.Context, userID int64) (*StatsResult, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for stats", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotRegistered
	}

	return &StatsResult{
		StartDate:     user.StartDate,
		CurrentStreak: user.CurrentStreak,
		LongestStreak: user.LongestStreak,
		TotalDays:     daysBetween(user.StartDate, s.now()) + 1,
	}, nil
}

// publishCheckIn publishes a check-in event to Kafka, best effort. The
// reward-delivery service consumes events carrying Reward=true.
func (s *StreakService) publishCheckIn(ctx context.Context, event models.CheckInEvent) {
	if s.eventWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal check-in event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.eventWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish check-in event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("check-in event published", "event_id", event.EventID, "user_id", event.UserID, "streak", event.Streak)
	}
}

func kindsToStrings(kinds []models.AchievementKind) []string {
	out := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, string(kind))
	}
	return out
}
