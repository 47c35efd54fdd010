package stats

import (
	"time"

	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/utils"
)

// CurrentStreak walks backward from today for at most lookback days. A
// zero-drink day extends the streak, a drinking day ends it, and a day with
// no log is skipped without ending or extending it.
func CurrentStreak(logs []models.ConsumptionLog, now time.Time, lookback int) int {
	drinksByDay := make(map[string]float64, len(logs))
	for _, l := range logs {
		drinksByDay[l.Date] = l.DrinksConsumed
	}

	streak := 0
	for i := 0; i < lookback; i++ {
		drinks, ok := drinksByDay[utils.DaysAgo(now, i)]
		if !ok {
			continue
		}
		if drinks > 0 {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak combines a stored longest streak with a freshly computed
// current one. The result never goes below previous.
func LongestStreak(previous, current int) int {
	return max(previous, current)
}

// LastDrinkDate returns the latest day with drinks recorded, or "" if none.
func LastDrinkDate(logs []models.ConsumptionLog) string {
	last := ""
	for _, l := range logs {
		if l.DrinksConsumed > 0 && l.Date > last {
			last = l.Date
		}
	}
	return last
}

// CalculateStreak computes the current streak and merges it into the
// previously stored longest streak.
func CalculateStreak(logs []models.ConsumptionLog, now time.Time, lookback, previousLongest int) models.Streak {
	current := CurrentStreak(logs, now, lookback)
	return models.Streak{
		Current:       current,
		Longest:       LongestStreak(previousLongest, current),
		LastDrinkDate: LastDrinkDate(logs),
	}
}
