package models

import "time"

// ChatMessageDB represents one entry of the append-only community feed.
type ChatMessageDB struct {
	MessageID int64     `json:"message_id" db:"message_id"` // Auto-incrementing primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Sender
	Username  string    `json:"username" db:"username"`     // Sender display name at send time
	Message   string    `json:"message" db:"message"`       // Free text
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Insertion timestamp
}
