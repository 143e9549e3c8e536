package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

func (r *UserReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Get returns the user record or nil when the user is not registered.
func (r *UserReadRepository) Get(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, start_date, last_check_in,
		       current_streak, longest_streak, reminder_enabled, reminder_time,
		       created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, userID)

	logger.Log.Debugw("user get",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetForUpdate locks the user row for the duration of the surrounding
// transaction. Concurrent check-ins for the same user serialize here.
func (r *UserReadRepository) GetForUpdate(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, start_date, last_check_in,
		       current_streak, longest_streak, reminder_enabled, reminder_time,
		       created_at, updated_at
		FROM users
		WHERE user_id = $1
		FOR UPDATE
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, userID)

	logger.Log.Debugw("user get for update",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns all known users. The scan is not transactionally
// consistent with concurrent check-ins, which is acceptable for the
// reminder tick and broadcast fan-out.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, username, start_date, last_check_in,
		       current_streak, longest_streak, reminder_enabled, reminder_time,
		       created_at, updated_at
		FROM users
		ORDER BY user_id
	`

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &users, query)

	logger.Log.Debugw("user list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveIfAbsent registers the user once. A second registration refreshes
// the informational username and reports inserted=false; everything
// else stays untouched.
func (r *UserWriteRepository) SaveIfAbsent(ctx context.Context, userID int64, username string, startDate time.Time) (bool, error) {
	query := `
		INSERT INTO users (user_id, username, start_date, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username,
		    updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`
	args := []any{userID, username, startDate}

	var inserted bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &inserted, query, args...)

	logger.Log.Debugw("user save if absent",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"inserted", inserted,
		"error", err,
	)

	return inserted, err
}

// SaveCheckIn writes the check-in transition as a single record update.
// The GREATEST guard keeps longest_streak >= current_streak even if the
// caller passed a stale value.
func (r *UserWriteRepository) SaveCheckIn(ctx context.Context, userID int64, lastCheckIn time.Time, streak int) error {
	query := `
		UPDATE users
		SET last_check_in = $2,
		    current_streak = $3,
		    longest_streak = GREATEST(longest_streak, $3),
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, lastCheckIn, streak}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("user save check-in",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}

// SetReminderEnabled toggles daily reminders for the user.
func (r *UserWriteRepository) SetReminderEnabled(ctx context.Context, userID int64, enabled bool) error {
	query := `
		UPDATE users
		SET reminder_enabled = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, enabled}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Debugw("user set reminder enabled",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SetReminderTime stores the reminder time of day as HH:MM.
func (r *UserWriteRepository) SetReminderTime(ctx context.Context, userID int64, reminderTime string) error {
	query := `
		UPDATE users
		SET reminder_time = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, reminderTime}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Debugw("user set reminder time",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
