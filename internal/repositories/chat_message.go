package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

// ChatMessageWriteRepository appends to the community feed. The feed is
// append-only: no updates, no deletes.
type ChatMessageWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewChatMessageWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ChatMessageWriteRepository {
	return &ChatMessageWriteRepository{db: db, txGetter: txGetter}
}

func (r *ChatMessageWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Append stores one chat message.
func (r *ChatMessageWriteRepository) Append(ctx context.Context, userID int64, username, text string) error {
	query := `
		INSERT INTO chat_messages (user_id, username, message, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{userID, username, text}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Debugw("chat message append",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// ChatMessageReadRepository reads the community feed.
type ChatMessageReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewChatMessageReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ChatMessageReadRepository {
	return &ChatMessageReadRepository{db: db, txGetter: txGetter}
}

func (r *ChatMessageReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ListRecent returns the latest messages in insertion order.
func (r *ChatMessageReadRepository) ListRecent(ctx context.Context, limit int) ([]models.ChatMessageDB, error) {
	const query = `
		SELECT message_id, user_id, username, message, created_at
		FROM (
			SELECT message_id, user_id, username, message, created_at
			FROM chat_messages
			ORDER BY message_id DESC
			LIMIT $1
		) latest
		ORDER BY message_id
	`

	var messages []models.ChatMessageDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &messages, query, limit)

	logger.Log.Debugw("chat message list recent",
		"query", strings.Join(strings.Fields(query), " "),
		"limit", limit,
		"count", len(messages),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return messages, nil
}
