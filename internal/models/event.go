package models

// CheckInEvent is published to Kafka after every accepted check-in.
// The reward-delivery service consumes events with Reward=true to hand
// out the 28-day prize.
type CheckInEvent struct {
	EventID   string   `json:"event_id"`  // Unique identifier for the event
	Timestamp int64    `json:"timestamp"` // Unix timestamp (seconds) of the check-in
	UserID    int64    `json:"user_id"`   // User who checked in
	Date      string   `json:"date"`      // Check-in date, YYYY-MM-DD
	Streak    int      `json:"streak"`    // Streak value after the check-in
	Unlocked  []string `json:"unlocked"`  // Achievement kinds unlocked by this check-in
	Reward    bool     `json:"reward"`    // True when the 28-day tier was just unlocked
}
