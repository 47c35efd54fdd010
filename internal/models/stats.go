package models

// ConsumptionStats summarises consumption over a trailing window.
type ConsumptionStats struct {
	Days               int      `json:"days"`
	TotalDrinks        float64  `json:"total_drinks"`
	AveragePerDay      float64  `json:"average_per_day"`
	DrinkingDays       int      `json:"drinking_days"`
	SoberDays          int      `json:"sober_days"`
	MostCommonTriggers []string `json:"most_common_triggers"`
	MoodImprovement    float64  `json:"mood_improvement"`
}

// HabitEffectiveness is one row of the habit effectiveness ranking.
type HabitEffectiveness struct {
	Title            string        `json:"title"`
	Category         HabitCategory `json:"category"`
	TotalUses        int           `json:"total_uses"`
	AvgEffectiveness float64       `json:"avg_effectiveness"`
	AvgDuration      float64       `json:"avg_duration"`
	UrgesReplaced    int           `json:"urges_replaced"`
}

// CrisisStats summarises crisis events over a trailing window.
type CrisisStats struct {
	TotalEvents             int      `json:"total_events"`
	ResolvedEvents          int      `json:"resolved_events"`
	ResolutionRate          float64  `json:"resolution_rate"` // percent
	MostCommonTriggers      []string `json:"most_common_triggers"`
	AverageSeverity         float64  `json:"average_severity"`
	MostEffectiveStrategies []string `json:"most_effective_strategies"`
}

// Streak is the result of a streak walk.
type Streak struct {
	Current       int    `json:"current_streak"`
	Longest       int    `json:"longest_streak"`
	LastDrinkDate string `json:"last_drink_date,omitempty"`
}
