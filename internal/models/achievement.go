package models

import "time"

// AchievementKind identifies a streak milestone tier.
type AchievementKind string

// Milestone tiers, each unlocked once per user, permanently.
const (
	Achievement3Days  AchievementKind = "3_days"
	Achievement7Days  AchievementKind = "7_days"
	Achievement14Days AchievementKind = "14_days"
	Achievement28Days AchievementKind = "28_days"
)

// AchievementTier couples a kind with its streak threshold.
type AchievementTier struct {
	Kind      AchievementKind
	Threshold int
}

// AchievementTiers lists all tiers in ascending threshold order.
var AchievementTiers = []AchievementTier{
	{Kind: Achievement3Days, Threshold: 3},
	{Kind: Achievement7Days, Threshold: 7},
	{Kind: Achievement14Days, Threshold: 14},
	{Kind: Achievement28Days, Threshold: 28},
}

// AchievementDB represents an unlocked achievement row.
// Composite key (user_id, achievement); AchievedDate is set once and never changes.
type AchievementDB struct {
	UserID       int64           `json:"user_id" db:"user_id"`
	Kind         AchievementKind `json:"achievement" db:"achievement"`
	AchievedDate time.Time       `json:"achieved_date" db:"achieved_date"`
}
