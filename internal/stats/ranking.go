package stats

import (
	"sort"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/models"
)

// RunningMean is an incrementally maintained arithmetic mean.
type RunningMean struct {
	N    int
	Mean float64
}

// Add folds v into the mean as (mean*(n-1) + v) / n.
func (m *RunningMean) Add(v float64) {
	m.N++
	m.Mean = (m.Mean*float64(m.N-1) + v) / float64(m.N)
}

// TopByCount ranks keys by frequency. Ties keep first-seen order. Empty keys
// are ignored. k <= 0 returns every key.
func TopByCount(keys []string, k int) []string {
	counts := make(map[string]int)
	var order []string
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if k > 0 && len(order) > k {
		order = order[:k]
	}
	if order == nil {
		return []string{}
	}
	return order
}

// RankHabits groups activities by habit title and ranks them by mean
// effectiveness, highest first. Activities whose habit is not in the catalog
// are skipped.
func RankHabits(activities []models.HabitActivity, catalog []models.HabitReplacement) []models.HabitEffectiveness {
	byID := make(map[string]models.HabitReplacement, len(catalog))
	for _, h := range catalog {
		byID[h.ID] = h
	}

	type group struct {
		row           models.HabitEffectiveness
		effectiveness RunningMean
		duration      RunningMean
	}
	groups := make(map[string]*group)
	var order []string

	for _, a := range activities {
		habit, ok := byID[a.HabitReplacementID]
		if !ok {
			continue
		}
		g, ok := groups[habit.Title]
		if !ok {
			g = &group{row: models.HabitEffectiveness{Title: habit.Title, Category: habit.Category}}
			groups[habit.Title] = g
			order = append(order, habit.Title)
		}
		g.effectiveness.Add(float64(a.EffectivenessRating))
		g.duration.Add(float64(a.DurationMinutes))
		if a.ReplacedDrinkingUrge {
			g.row.UrgesReplaced++
		}
	}

	ranked := make([]models.HabitEffectiveness, 0, len(order))
	for _, title := range order {
		g := groups[title]
		g.row.TotalUses = g.effectiveness.N
		g.row.AvgEffectiveness = g.effectiveness.Mean
		g.row.AvgDuration = g.duration.Mean
		ranked = append(ranked, g.row)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AvgEffectiveness > ranked[j].AvgEffectiveness
	})
	return ranked
}

// SummarizeCrises aggregates a window of crisis events. Coping strategies
// are only credited when the event was resolved.
func SummarizeCrises(events []models.CrisisEvent) models.CrisisStats {
	result := models.CrisisStats{
		MostCommonTriggers:      []string{},
		MostEffectiveStrategies: []string{},
	}
	if len(events) == 0 {
		return result
	}

	var (
		severity   int
		triggers   []string
		strategies []string
	)
	for _, e := range events {
		if e.Resolved {
			result.ResolvedEvents++
			strategies = append(strategies, e.CopingStrategyUsed)
		}
		severity += e.SeverityLevel
		triggers = append(triggers, e.TriggerDescription)
	}

	result.TotalEvents = len(events)
	result.ResolutionRate = float64(result.ResolvedEvents) / float64(result.TotalEvents) * 100
	result.AverageSeverity = float64(severity) / float64(result.TotalEvents)
	result.MostCommonTriggers = TopByCount(triggers, constants.TopK)
	result.MostEffectiveStrategies = TopByCount(strategies, constants.TopK)

	return result
}
