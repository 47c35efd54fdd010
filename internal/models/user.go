package models

import "time"

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

type DrinkingType string

const (
	DrinkingStress    DrinkingType = "stress"
	DrinkingSocial    DrinkingType = "social"
	DrinkingHabit     DrinkingType = "habit"
	DrinkingEmotional DrinkingType = "emotional"
	DrinkingBoredom   DrinkingType = "boredom"
)

type GoalType string

const (
	GoalHarmReduction GoalType = "harm_reduction"
	GoalModeration    GoalType = "moderation"
	GoalAbstinence    GoalType = "abstinence"
)

// RiskTier is a WHO-style drinking risk band.
type RiskTier string

const (
	RiskNone     RiskTier = "none"
	RiskLow      RiskTier = "low"
	RiskMedium   RiskTier = "medium"
	RiskHigh     RiskTier = "high"
	RiskVeryHigh RiskTier = "very_high"
)

type User struct {
	ID                  string       `json:"id"`
	Username            string       `json:"username"`
	Email               string       `json:"email"`
	Age                 int          `json:"age"`
	Gender              Gender       `json:"gender"`
	DrinkingType        DrinkingType `json:"drinking_type"`
	GoalType            GoalType     `json:"goal_type"`
	CurrentDrinksPerDay float64      `json:"current_drinks_per_day"`
	TargetDrinksPerDay  float64      `json:"target_drinks_per_day"`
	CurrentStreak       int          `json:"current_streak"`
	LongestStreak       int          `json:"longest_streak"`
	LastDrinkDate       string       `json:"last_drink_date,omitempty"` // YYYY-MM-DD format
	RiskTier            RiskTier     `json:"current_who_risk_level"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}
