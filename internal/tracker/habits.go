package tracker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/stats"
	"github.com/julianstephens/recoverwise/internal/utils"
	"github.com/julianstephens/recoverwise/internal/validation"
)

// HabitFilter narrows the catalog. Zero values match everything except
// inactive habits.
type HabitFilter struct {
	Category        models.HabitCategory
	DrinkingType    models.DrinkingType
	IncludeInactive bool
}

func activityKeys(a models.HabitActivity) (string, string) { return a.ID, a.UserID }

// SeedCatalog writes the default catalog when none is stored and reports how
// many habits were added.
func (t *Tracker) SeedCatalog() (int, error) {
	habits, err := t.habits.All()
	if err != nil {
		return 0, err
	}
	if len(habits) > 0 {
		return 0, nil
	}
	defaults := DefaultCatalog(t.clock())
	if err := t.habits.Save(defaults); err != nil {
		return 0, fmt.Errorf("failed to seed habit catalog: %w", err)
	}
	logger.Info("Habit catalog seeded", "habits", len(defaults))
	return len(defaults), nil
}

func (t *Tracker) Catalog(f HabitFilter) ([]models.HabitReplacement, error) {
	habits, err := t.habits.All()
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(habits, func(h models.HabitReplacement) bool {
		if !h.IsActive && !f.IncludeInactive {
			return true
		}
		if f.Category != "" && h.Category != f.Category {
			return true
		}
		if f.DrinkingType != "" && !h.Suits(f.DrinkingType) {
			return true
		}
		return false
	}), nil
}

// Habit looks a catalog entry up by id, or by case-insensitive title.
func (t *Tracker) Habit(ref string) (models.HabitReplacement, error) {
	habits, err := t.habits.All()
	if err != nil {
		return models.HabitReplacement{}, err
	}
	idx := slices.IndexFunc(habits, func(h models.HabitReplacement) bool {
		return h.ID == ref || strings.EqualFold(h.Title, ref)
	})
	if idx < 0 {
		return models.HabitReplacement{}, notFound("habit", ref)
	}
	return habits[idx], nil
}

// AddActivity records that the user practised a catalog habit.
func (t *Tracker) AddActivity(userID string, a models.HabitActivity) (models.HabitActivity, error) {
	h, err := t.Habit(a.HabitReplacementID)
	if err != nil {
		return models.HabitActivity{}, err
	}
	a.HabitReplacementID = h.ID
	a.UserID = userID
	if a.Date == "" {
		if a.Date, err = t.Today(); err != nil {
			return models.HabitActivity{}, err
		}
	}
	if a.EffectivenessRating == 0 {
		a.EffectivenessRating = constants.DefaultRating
	}
	if err := validation.Activity(a); err != nil {
		return models.HabitActivity{}, err
	}

	now := t.clock()
	a.ID = utils.NewID()
	a.CreatedAt = now
	a.UpdatedAt = now
	err = mutate(t.activities, func(xs []models.HabitActivity) ([]models.HabitActivity, error) {
		return append(xs, a), nil
	})
	if err != nil {
		return models.HabitActivity{}, fmt.Errorf("failed to add activity: %w", err)
	}
	return a, nil
}

func (t *Tracker) UpdateActivity(userID string, a models.HabitActivity) (models.HabitActivity, error) {
	a.UserID = userID
	if err := validation.Activity(a); err != nil {
		return models.HabitActivity{}, err
	}
	err := mutate(t.activities, func(xs []models.HabitActivity) ([]models.HabitActivity, error) {
		idx := indexOwned(xs, a.ID, userID, activityKeys)
		if idx < 0 {
			return nil, notFound("activity", a.ID)
		}
		a.CreatedAt = xs[idx].CreatedAt
		a.UpdatedAt = t.clock()
		xs[idx] = a
		return xs, nil
	})
	if err != nil {
		return models.HabitActivity{}, fmt.Errorf("failed to update activity: %w", err)
	}
	return a, nil
}

func (t *Tracker) DeleteActivity(userID, id string) error {
	err := mutate(t.activities, func(xs []models.HabitActivity) ([]models.HabitActivity, error) {
		idx := indexOwned(xs, id, userID, activityKeys)
		if idx < 0 {
			return nil, notFound("activity", id)
		}
		return slices.Delete(xs, idx, idx+1), nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// ListActivities returns the user's activities between the optional
// inclusive bounds, oldest first.
func (t *Tracker) ListActivities(userID, start, end string) ([]models.HabitActivity, error) {
	xs, err := t.activities.All()
	if err != nil {
		return nil, err
	}
	xs = owned(xs, userID, func(a models.HabitActivity) string { return a.UserID })
	xs = slices.DeleteFunc(xs, func(a models.HabitActivity) bool { return !inRange(a.Date, start, end) })
	slices.SortStableFunc(xs, func(a, b models.HabitActivity) int { return strings.Compare(a.Date, b.Date) })
	return xs, nil
}

// HabitEffectiveness ranks the habits the user practised in the last days
// days, most effective first.
func (t *Tracker) HabitEffectiveness(userID string, days int) ([]models.HabitEffectiveness, error) {
	now, err := t.Now()
	if err != nil {
		return nil, err
	}
	xs, err := t.activities.All()
	if err != nil {
		return nil, err
	}
	catalog, err := t.habits.All()
	if err != nil {
		return nil, err
	}
	xs = owned(xs, userID, func(a models.HabitActivity) string { return a.UserID })
	return stats.RankHabits(stats.FilterActivities(xs, stats.NewWindow(now, days)), catalog), nil
}
