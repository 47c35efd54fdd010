package models

import "time"

// ConsumptionLog is one day's drinking record. There is at most one per
// (user, date).
type ConsumptionLog struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Date           string    `json:"date"` // YYYY-MM-DD format
	DrinksConsumed float64   `json:"drinks_consumed"`
	DrinkTypes     []string  `json:"drink_types"`
	Triggers       []string  `json:"triggers"`
	MoodBefore     int       `json:"mood_before,omitempty"` // 1-10, 0 when not recorded
	MoodAfter      int       `json:"mood_after,omitempty"`  // 1-10, 0 when not recorded
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasMood reports whether both mood ratings were recorded.
func (l ConsumptionLog) HasMood() bool {
	return l.MoodBefore != 0 && l.MoodAfter != 0
}
