package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID          int64      `json:"user_id" db:"user_id"`                   // Transport-owned identifier, immutable
	Username        string     `json:"username" db:"username"`                 // Display name, informational only
	StartDate       time.Time  `json:"start_date" db:"start_date"`             // Date of first registration
	LastCheckIn     *time.Time `json:"last_check_in" db:"last_check_in"`       // Nil until the first check-in
	CurrentStreak   int        `json:"current_streak" db:"current_streak"`     // Consecutive check-in days
	LongestStreak   int        `json:"longest_streak" db:"longest_streak"`     // Always >= CurrentStreak
	ReminderEnabled bool       `json:"reminder_enabled" db:"reminder_enabled"` // Daily reminder toggle
	ReminderTime    string     `json:"reminder_time" db:"reminder_time"`       // Time of day, HH:MM
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`             // Last update timestamp
}
