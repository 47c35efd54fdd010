package models

import "time"

type EntryType string

const (
	EntryDailyReflection EntryType = "daily_reflection"
	EntryGratitude       EntryType = "gratitude"
	EntryTriggerAnalysis EntryType = "trigger_analysis"
	EntryGoalSetting     EntryType = "goal_setting"
	EntryProgressReview  EntryType = "progress_review"
)

type JournalEntry struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Date            string    `json:"date"` // YYYY-MM-DD format
	EntryType       EntryType `json:"entry_type"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MoodRating      int       `json:"mood_rating"`
	StressLevel     int       `json:"stress_level"`
	ConfidenceLevel int       `json:"confidence_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
