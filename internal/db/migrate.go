package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// RunMigrations creates the schema on startup. Statements are
// idempotent, so running them on every boot is safe.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users (
    user_id BIGINT PRIMARY KEY,
    username TEXT NOT NULL DEFAULT '',
    start_date DATE NOT NULL,
    last_check_in DATE,
    current_streak INT NOT NULL DEFAULT 0,
    longest_streak INT NOT NULL DEFAULT 0,
    reminder_enabled BOOLEAN NOT NULL DEFAULT TRUE,
    reminder_time VARCHAR(5) NOT NULL DEFAULT '20:00',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS achievements (
    user_id BIGINT NOT NULL,
    achievement VARCHAR(16) NOT NULL,
    achieved_date DATE NOT NULL,
    PRIMARY KEY (user_id, achievement)
);

CREATE TABLE IF NOT EXISTS chat_messages (
    message_id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    username TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS chat_messages_created_at_idx ON chat_messages (created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}
