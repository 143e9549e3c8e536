package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

// AchievementWriteRepository handles achievement unlock writes.
type AchievementWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAchievementWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AchievementWriteRepository {
	return &AchievementWriteRepository{db: db, txGetter: txGetter}
}

func (r *AchievementWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// InsertIfAbsent records an achievement unlock once. It reports whether
// a new row was created; an already-held achievement leaves the stored
// achieved_date untouched and reports false.
func (r *AchievementWriteRepository) InsertIfAbsent(ctx context.Context, userID int64, kind models.AchievementKind, achievedDate time.Time) (bool, error) {
	query := `
		INSERT INTO achievements (user_id, achievement, achieved_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement) DO NOTHING
	`
	args := []any{userID, kind, achievedDate}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("achievement insert if absent",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// AchievementReadRepository handles achievement reads.
type AchievementReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAchievementReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AchievementReadRepository {
	return &AchievementReadRepository{db: db, txGetter: txGetter}
}

func (r *AchievementReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ListByUser returns the user's unlocked achievements in unlock order.
func (r *AchievementReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.AchievementDB, error) {
	const query = `
		SELECT user_id, achievement, achieved_date
		FROM achievements
		WHERE user_id = $1
		ORDER BY achieved_date, achievement
	`

	var achievements []models.AchievementDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &achievements, query, userID)

	logger.Log.Debugw("achievement list",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"count", len(achievements),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return achievements, nil
}
