package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

var (
	// ErrNotInChat is returned when a non-member posts to the community feed.
	ErrNotInChat = errors.New("user is not in the community chat")
)

// ChatSessionStore tracks community chat membership.
type ChatSessionStore interface {
	SetInChat(ctx context.Context, userID int64) error
	ClearInChat(ctx context.Context, userID int64) error
	InChat(ctx context.Context, userID int64) (bool, error)
}

// ChatAppender appends to the community feed.
type ChatAppender interface {
	Append(ctx context.Context, userID int64, username, text string) error
}

// ChatHistoryReader reads the community feed.
type ChatHistoryReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.ChatMessageDB, error)
}

// Broadcaster fans a message out to all users except a sender.
type Broadcaster interface {
	Broadcast(ctx context.Context, text string, excludeUserID int64) error
}

// ChatService implements the community chat: membership, the
// append-only feed, and fan-out of posted messages.
type ChatService struct {
	sessions    ChatSessionStore
	appender    ChatAppender
	history     ChatHistoryReader
	broadcaster Broadcaster
}

// NewChatService creates a new ChatService.
func NewChatService(sessions ChatSessionStore, appender ChatAppender, history ChatHistoryReader, broadcaster Broadcaster) *ChatService {
	return &ChatService{
		sessions:    sessions,
		appender:    appender,
		history:     history,
		broadcaster: broadcaster,
	}
}

// Join adds the user to the community chat and announces it. Membership
// is persisted, so it survives restarts.
func (s *ChatService) Join(ctx context.Context, userID int64, username string) error {
	if err := s.sessions.SetInChat(ctx, userID); err != nil {
		logger.Log.Errorw("failed to join chat", "user_id", userID, "error", err)
		return err
	}

	if err := s.broadcaster.Broadcast(ctx, fmt.Sprintf("👋 User %s has joined the chat!", username), userID); err != nil {
		logger.Log.Errorw("failed to announce chat join", "user_id", userID, "error", err)
	}

	return nil
}

// Leave removes the user from the community chat and announces it.
func (s *ChatService) Leave(ctx context.Context, userID int64, username string) error {
	if err := s.sessions.ClearInChat(ctx, userID); err != nil {
		logger.Log.Errorw("failed to leave chat", "user_id", userID, "error", err)
		return err
	}

	if err := s.broadcaster.Broadcast(ctx, fmt.Sprintf("👋 User %s has left the chat.", username), userID); err != nil {
		logger.Log.Errorw("failed to announce chat leave", "user_id", userID, "error", err)
	}

	return nil
}

// Post appends the member's message to the feed and fans it out to
// everyone else. Non-members get ErrNotInChat.
func (s *ChatService) Post(ctx context.Context, userID int64, username, text string) error {
	inChat, err := s.sessions.InChat(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check chat membership", "user_id", userID, "error", err)
		return err
	}
	if !inChat {
		return ErrNotInChat
	}

	if err := s.appender.Append(ctx, userID, username, text); err != nil {
		logger.Log.Errorw("failed to append chat message", "user_id", userID, "error", err)
		return err
	}

	if err := s.broadcaster.Broadcast(ctx, fmt.Sprintf("💬 %s: %s", username, text), userID); err != nil {
		logger.Log.Errorw("failed to fan out chat message", "user_id", userID, "error", err)
	}

	return nil
}

// Recent returns the latest feed messages in insertion order.
func (s *ChatService) Recent(ctx context.Context, limit int) ([]models.ChatMessageDB, error) {
	if limit <= 0 {
		limit = 50
	}

	messages, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to read chat history", "limit", limit, "error", err)
		return nil, err
	}

	return messages, nil
}
