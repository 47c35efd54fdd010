package stats

import (
	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/models"
)

// SummarizeConsumption aggregates the logs of a window of days days.
//
// The average divides by days, not by the number of logged days, and every
// day without a drinking log counts as sober, so SoberDays+DrinkingDays is
// days whenever the window covers every logged day. Negative days are treated as 0, matching NewWindow, and
// SoberDays never goes below zero.
func SummarizeConsumption(logs []models.ConsumptionLog, days int) models.ConsumptionStats {
	days = max(days, 0)
	result := models.ConsumptionStats{
		Days:               days,
		SoberDays:          days,
		MostCommonTriggers: []string{},
	}
	if len(logs) == 0 {
		return result
	}

	var (
		total       float64
		drinking    int
		moodSum     float64
		moodSamples int
		triggers    []string
	)
	for _, l := range logs {
		total += l.DrinksConsumed
		if l.DrinksConsumed > 0 {
			drinking++
		}
		if l.HasMood() {
			moodSum += float64(l.MoodAfter - l.MoodBefore)
			moodSamples++
		}
		triggers = append(triggers, l.Triggers...)
	}

	result.TotalDrinks = total
	if days > 0 {
		result.AveragePerDay = total / float64(days)
	}
	result.DrinkingDays = drinking
	result.SoberDays = max(days-drinking, 0)
	if moodSamples > 0 {
		result.MoodImprovement = moodSum / float64(moodSamples)
	}
	result.MostCommonTriggers = TopByCount(triggers, constants.TopK)

	return result
}

// AverageDrinks returns the mean drinks per logged day. ok is false when
// logs is empty.
func AverageDrinks(logs []models.ConsumptionLog) (avg float64, ok bool) {
	if len(logs) == 0 {
		return 0, false
	}
	var total float64
	for _, l := range logs {
		total += l.DrinksConsumed
	}
	return total / float64(len(logs)), true
}
