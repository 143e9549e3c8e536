package services

import (
	"context"
	"time"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

// AchievementInserter records an achievement unlock once per (user, kind).
type AchievementInserter interface {
	InsertIfAbsent(ctx context.Context, userID int64, kind models.AchievementKind, achievedDate time.Time) (bool, error)
}

// AchievementLister reads a user's unlocked achievements.
type AchievementLister interface {
	ListByUser(ctx context.Context, userID int64) ([]models.AchievementDB, error)
}

// AchievementService derives unlocked achievements from streak values.
type AchievementService struct {
	writer AchievementInserter
	reader AchievementLister
}

// NewAchievementService creates a new AchievementService.
func NewAchievementService(writer AchievementInserter, reader AchievementLister) *AchievementService {
	return &AchievementService{writer: writer, reader: reader}
}

// Evaluate checks every milestone tier against the streak value and
// returns only the kinds whose unlock row was created by this call.
// Evaluating the same streak twice reports nothing the second time.
func (s *AchievementService) Evaluate(ctx context.Context, userID int64, streak int, today time.Time) ([]models.AchievementKind, error) {
	var unlocked []models.AchievementKind

	for _, tier := range models.AchievementTiers {
		if streak < tier.Threshold {
			continue
		}

		inserted, err := s.writer.InsertIfAbsent(ctx, userID, tier.Kind, today)
		if err != nil {
			logger.Log.Errorw("failed to insert achievement", "user_id", userID, "kind", tier.Kind, "error", err)
			return nil, err
		}
		if inserted {
			unlocked = append(unlocked, tier.Kind)
		}
	}

	return unlocked, nil
}

// List returns the user's unlocked achievements in unlock order.
func (s *AchievementService) List(ctx context.Context, userID int64) ([]models.AchievementDB, error) {
	achievements, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list achievements", "user_id", userID, "error", err)
		return nil, err
	}
	return achievements, nil
}
