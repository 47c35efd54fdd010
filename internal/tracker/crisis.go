package tracker

import (
	"fmt"
	"slices"
	"time"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/stats"
	"github.com/julianstephens/recoverwise/internal/utils"
	"github.com/julianstephens/recoverwise/internal/validation"
)

// CrisisFilter narrows crisis listings. Zero times leave that bound open.
type CrisisFilter struct {
	Type  models.CrisisType
	Since time.Time
	Until time.Time
}

func crisisKeys(c models.CrisisEvent) (string, string) { return c.ID, c.UserID }

func (t *Tracker) AddCrisis(userID string, c models.CrisisEvent) (models.CrisisEvent, error) {
	now := t.clock()
	c.UserID = userID
	if c.Timestamp.IsZero() {
		c.Timestamp = now
	}
	if c.CrisisType == "" {
		c.CrisisType = constants.DefaultCrisisType
	}
	if c.SeverityLevel == 0 {
		c.SeverityLevel = constants.DefaultRating
	}
	if err := validation.Crisis(c); err != nil {
		return models.CrisisEvent{}, err
	}

	c.ID = utils.NewID()
	c.CreatedAt = now
	c.UpdatedAt = now
	err := mutate(t.crises, func(xs []models.CrisisEvent) ([]models.CrisisEvent, error) {
		return append(xs, c), nil
	})
	if err != nil {
		return models.CrisisEvent{}, fmt.Errorf("failed to add crisis event: %w", err)
	}
	return c, nil
}

func (t *Tracker) UpdateCrisis(userID string, c models.CrisisEvent) (models.CrisisEvent, error) {
	c.UserID = userID
	if err := validation.Crisis(c); err != nil {
		return models.CrisisEvent{}, err
	}
	err := mutate(t.crises, func(xs []models.CrisisEvent) ([]models.CrisisEvent, error) {
		idx := indexOwned(xs, c.ID, userID, crisisKeys)
		if idx < 0 {
			return nil, notFound("crisis event", c.ID)
		}
		c.CreatedAt = xs[idx].CreatedAt
		c.UpdatedAt = t.clock()
		xs[idx] = c
		return xs, nil
	})
	if err != nil {
		return models.CrisisEvent{}, fmt.Errorf("failed to update crisis event: %w", err)
	}
	return c, nil
}

// ResolveCrisis marks an event resolved, recording the strategy and outcome
// when given.
func (t *Tracker) ResolveCrisis(userID, id, strategy, outcome string) (models.CrisisEvent, error) {
	c, err := t.GetCrisis(userID, id)
	if err != nil {
		return models.CrisisEvent{}, err
	}
	c.Resolved = true
	if strategy != "" {
		c.CopingStrategyUsed = strategy
	}
	if outcome != "" {
		c.Outcome = outcome
	}
	return t.UpdateCrisis(userID, c)
}

func (t *Tracker) DeleteCrisis(userID, id string) error {
	err := mutate(t.crises, func(xs []models.CrisisEvent) ([]models.CrisisEvent, error) {
		idx := indexOwned(xs, id, userID, crisisKeys)
		if idx < 0 {
			return nil, notFound("crisis event", id)
		}
		return slices.Delete(xs, idx, idx+1), nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete crisis event: %w", err)
	}
	return nil
}

func (t *Tracker) GetCrisis(userID, id string) (models.CrisisEvent, error) {
	xs, err := t.crises.All()
	if err != nil {
		return models.CrisisEvent{}, err
	}
	idx := indexOwned(xs, id, userID, crisisKeys)
	if idx < 0 {
		return models.CrisisEvent{}, notFound("crisis event", id)
	}
	return xs[idx], nil
}

// ListCrises returns the user's events matching f, newest first.
func (t *Tracker) ListCrises(userID string, f CrisisFilter) ([]models.CrisisEvent, error) {
	xs, err := t.crises.All()
	if err != nil {
		return nil, err
	}
	xs = owned(xs, userID, func(c models.CrisisEvent) string { return c.UserID })
	xs = slices.DeleteFunc(xs, func(c models.CrisisEvent) bool {
		if f.Type != "" && c.CrisisType != f.Type {
			return true
		}
		if !f.Since.IsZero() && c.Timestamp.Before(f.Since) {
			return true
		}
		if !f.Until.IsZero() && c.Timestamp.After(f.Until) {
			return true
		}
		return false
	})
	slices.SortStableFunc(xs, func(a, b models.CrisisEvent) int { return b.Timestamp.Compare(a.Timestamp) })
	return xs, nil
}

// CrisisStats summarizes the user's events in the last days days.
func (t *Tracker) CrisisStats(userID string, days int) (models.CrisisStats, error) {
	now, err := t.Now()
	if err != nil {
		return models.CrisisStats{}, err
	}
	xs, err := t.crises.All()
	if err != nil {
		return models.CrisisStats{}, err
	}
	xs = owned(xs, userID, func(c models.CrisisEvent) string { return c.UserID })
	return stats.SummarizeCrises(stats.FilterEvents(xs, stats.NewWindow(now, days))), nil
}
