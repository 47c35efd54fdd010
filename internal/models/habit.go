package models

import (
	"slices"
	"time"
)

type HabitCategory string

const (
	CategoryStressRelief HabitCategory = "stress_relief"
	CategoryPhysical     HabitCategory = "physical"
	CategoryMindfulness  HabitCategory = "mindfulness"
	CategoryCreative     HabitCategory = "creative"
	CategorySocial       HabitCategory = "social"
	CategorySelfCare     HabitCategory = "self_care"
)

// HabitReplacement is a catalogued alternative to drinking. Catalog entries
// are reference data and are not edited by users.
type HabitReplacement struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Category         HabitCategory  `json:"category"`
	DrinkingTypes    []DrinkingType `json:"drinking_types"`
	DurationMinutes  int            `json:"duration_minutes"`
	DifficultyLevel  int            `json:"difficulty_level"`
	LocationRequired string         `json:"location_required"`
	EquipmentNeeded  []string       `json:"equipment_needed"`
	Instructions     string         `json:"instructions"`
	IsActive         bool           `json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Suits reports whether the habit is suggested for the given drinking type.
func (h HabitReplacement) Suits(t DrinkingType) bool {
	return slices.Contains(h.DrinkingTypes, t)
}

// HabitActivity records one use of a habit replacement.
type HabitActivity struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	HabitReplacementID   string    `json:"habit_replacement_id"`
	Date                 string    `json:"date"` // YYYY-MM-DD format
	DurationMinutes      int       `json:"duration_minutes"`
	EffectivenessRating  int       `json:"effectiveness_rating"`
	ReplacedDrinkingUrge bool      `json:"replaced_drinking_urge"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
