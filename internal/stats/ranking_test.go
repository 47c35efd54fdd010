package stats

import (
	"reflect"
	"testing"

	"github.com/julianstephens/recoverwise/internal/models"
)

func TestRunningMean(t *testing.T) {
	var m RunningMean
	for _, v := range []float64{8, 6, 10} {
		m.Add(v)
	}
	if m.N != 3 || m.Mean != 8.0 {
		t.Errorf("RunningMean = %+v, want N=3 Mean=8", m)
	}
}

func TestTopByCount(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		k    int
		want []string
	}{
		{"empty", nil, 3, []string{}},
		{"blank keys ignored", []string{"", ""}, 3, []string{}},
		{"ties keep first seen", []string{"b", "a", "c", "d"}, 3, []string{"b", "a", "c"}},
		{"count wins", []string{"a", "b", "b", "c", "c", "c"}, 2, []string{"c", "b"}},
		{"k zero returns all", []string{"a", "b", "a"}, 0, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopByCount(tt.keys, tt.k); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopByCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankHabits(t *testing.T) {
	catalog := []models.HabitReplacement{
		{ID: "walk", Title: "10-Minute Walk", Category: models.CategoryPhysical},
		{ID: "tea", Title: "Mindful Tea Ceremony", Category: models.CategoryMindfulness},
	}
	activities := []models.HabitActivity{
		{HabitReplacementID: "walk", EffectivenessRating: 8, DurationMinutes: 10, ReplacedDrinkingUrge: true},
		{HabitReplacementID: "tea", EffectivenessRating: 9, DurationMinutes: 15},
		{HabitReplacementID: "walk", EffectivenessRating: 6, DurationMinutes: 20},
		{HabitReplacementID: "missing", EffectivenessRating: 10},
		{HabitReplacementID: "walk", EffectivenessRating: 10, DurationMinutes: 30, ReplacedDrinkingUrge: true},
	}

	got := RankHabits(activities, catalog)
	want := []models.HabitEffectiveness{
		{Title: "Mindful Tea Ceremony", Category: models.CategoryMindfulness, TotalUses: 1, AvgEffectiveness: 9, AvgDuration: 15},
		{Title: "10-Minute Walk", Category: models.CategoryPhysical, TotalUses: 3, AvgEffectiveness: 8, AvgDuration: 20, UrgesReplaced: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankHabits() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestRankHabitsGroupsByTitle(t *testing.T) {
	catalog := []models.HabitReplacement{
		{ID: "a", Title: "Deep Breathing Exercise"},
		{ID: "b", Title: "Deep Breathing Exercise"},
	}
	activities := []models.HabitActivity{
		{HabitReplacementID: "a", EffectivenessRating: 4},
		{HabitReplacementID: "b", EffectivenessRating: 6},
	}
	got := RankHabits(activities, catalog)
	if len(got) != 1 || got[0].TotalUses != 2 || got[0].AvgEffectiveness != 5 {
		t.Errorf("RankHabits() = %+v, want one group with 2 uses averaging 5", got)
	}
}

func TestRankHabitsEmpty(t *testing.T) {
	got := RankHabits(nil, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("RankHabits(nil, nil) = %#v, want empty slice", got)
	}
}

func TestSummarizeCrises(t *testing.T) {
	events := []models.CrisisEvent{
		{TriggerDescription: "argument", CopingStrategyUsed: "walk", SeverityLevel: 8, Resolved: true},
		{TriggerDescription: "payday", CopingStrategyUsed: "call friend", SeverityLevel: 6},
		{TriggerDescription: "argument", CopingStrategyUsed: "breathing", SeverityLevel: 4, Resolved: true},
		{TriggerDescription: "", CopingStrategyUsed: "walk", SeverityLevel: 2, Resolved: true},
	}

	got := SummarizeCrises(events)
	if got.TotalEvents != 4 || got.ResolvedEvents != 3 {
		t.Errorf("totals = %d/%d, want 4/3", got.TotalEvents, got.ResolvedEvents)
	}
	if got.ResolutionRate != 75 {
		t.Errorf("ResolutionRate = %v, want 75", got.ResolutionRate)
	}
	if got.AverageSeverity != 5 {
		t.Errorf("AverageSeverity = %v, want 5", got.AverageSeverity)
	}
	if want := []string{"argument", "payday"}; !reflect.DeepEqual(got.MostCommonTriggers, want) {
		t.Errorf("MostCommonTriggers = %v, want %v", got.MostCommonTriggers, want)
	}
	if want := []string{"walk", "breathing"}; !reflect.DeepEqual(got.MostEffectiveStrategies, want) {
		t.Errorf("MostEffectiveStrategies = %v, want %v", got.MostEffectiveStrategies, want)
	}
}

func TestSummarizeCrisesEmpty(t *testing.T) {
	got := SummarizeCrises(nil)
	if got.TotalEvents != 0 || got.ResolutionRate != 0 || len(got.MostCommonTriggers) != 0 {
		t.Errorf("SummarizeCrises(nil) = %+v, want zero stats", got)
	}
}
