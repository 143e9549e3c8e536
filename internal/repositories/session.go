package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

// SessionRepository stores per-user conversation state in Redis. Keys
// have no TTL so chat membership and menu state survive restarts.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new repository instance.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func menuStateKey(userID int64) string {
	return fmt.Sprintf("session:state:%d", userID)
}

func chatKey(userID int64) string {
	return fmt.Sprintf("session:chat:%d", userID)
}

// SetMenuState stores the user's current menu state.
func (r *SessionRepository) SetMenuState(ctx context.Context, userID int64, state models.MenuState) error {
	key := menuStateKey(userID)
	err := r.client.Set(ctx, key, string(state), 0).Err()

	logger.Log.Debugw("session set menu state",
		"key", key,
		"state", state,
		"error", err,
	)

	return err
}

// GetMenuState returns the stored menu state, defaulting to the main
// menu when nothing is stored.
func (r *SessionRepository) GetMenuState(ctx context.Context, userID int64) (models.MenuState, error) {
	key := menuStateKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return models.MenuStateMain, nil
	}
	if err != nil {
		logger.Log.Debugw("session get menu state", "key", key, "error", err)
		return "", err
	}

	return models.MenuState(val), nil
}

// SetInChat marks the user as a community chat member.
func (r *SessionRepository) SetInChat(ctx context.Context, userID int64) error {
	key := chatKey(userID)
	err := r.client.Set(ctx, key, "1", 0).Err()

	logger.Log.Debugw("session set in chat", "key", key, "error", err)

	return err
}

// ClearInChat removes the user from the community chat.
func (r *SessionRepository) ClearInChat(ctx context.Context, userID int64) error {
	key := chatKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("session clear in chat", "key", key, "error", err)

	return err
}

// InChat reports whether the user is a community chat member.
func (r *SessionRepository) InChat(ctx context.Context, userID int64) (bool, error) {
	key := chatKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.Log.Debugw("session in chat", "key", key, "error", err)
		return false, err
	}

	return val == "1", nil
}
