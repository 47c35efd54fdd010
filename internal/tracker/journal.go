package tracker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/utils"
	"github.com/julianstephens/recoverwise/internal/validation"
)

type JournalFilter struct {
	Start string
	End   string
	Type  models.EntryType
}

func entryKeys(e models.JournalEntry) (string, string) { return e.ID, e.UserID }

func applyEntryDefaults(e *models.JournalEntry) {
	if e.EntryType == "" {
		e.EntryType = constants.DefaultEntryType
	}
	if e.MoodRating == 0 {
		e.MoodRating = constants.DefaultMood
	}
	if e.StressLevel == 0 {
		e.StressLevel = constants.DefaultRating
	}
	if e.ConfidenceLevel == 0 {
		e.ConfidenceLevel = constants.DefaultRating
	}
}

func (t *Tracker) AddEntry(userID string, e models.JournalEntry) (models.JournalEntry, error) {
	e.UserID = userID
	if e.Date == "" {
		today, err := t.Today()
		if err != nil {
			return models.JournalEntry{}, err
		}
		e.Date = today
	}
	applyEntryDefaults(&e)
	if err := validation.Entry(e); err != nil {
		return models.JournalEntry{}, err
	}

	now := t.clock()
	e.ID = utils.NewID()
	e.CreatedAt = now
	e.UpdatedAt = now
	err := mutate(t.entries, func(xs []models.JournalEntry) ([]models.JournalEntry, error) {
		return append(xs, e), nil
	})
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to add journal entry: %w", err)
	}
	return e, nil
}

func (t *Tracker) UpdateEntry(userID string, e models.JournalEntry) (models.JournalEntry, error) {
	e.UserID = userID
	applyEntryDefaults(&e)
	if err := validation.Entry(e); err != nil {
		return models.JournalEntry{}, err
	}
	err := mutate(t.entries, func(xs []models.JournalEntry) ([]models.JournalEntry, error) {
		idx := indexOwned(xs, e.ID, userID, entryKeys)
		if idx < 0 {
			return nil, notFound("journal entry", e.ID)
		}
		e.CreatedAt = xs[idx].CreatedAt
		e.UpdatedAt = t.clock()
		xs[idx] = e
		return xs, nil
	})
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to update journal entry: %w", err)
	}
	return e, nil
}

func (t *Tracker) DeleteEntry(userID, id string) error {
	err := mutate(t.entries, func(xs []models.JournalEntry) ([]models.JournalEntry, error) {
		idx := indexOwned(xs, id, userID, entryKeys)
		if idx < 0 {
			return nil, notFound("journal entry", id)
		}
		return slices.Delete(xs, idx, idx+1), nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	return nil
}

// ListEntries returns the user's entries matching f, newest first.
func (t *Tracker) ListEntries(userID string, f JournalFilter) ([]models.JournalEntry, error) {
	xs, err := t.entries.All()
	if err != nil {
		return nil, err
	}
	xs = owned(xs, userID, func(e models.JournalEntry) string { return e.UserID })
	xs = slices.DeleteFunc(xs, func(e models.JournalEntry) bool {
		return !inRange(e.Date, f.Start, f.End) || (f.Type != "" && e.EntryType != f.Type)
	})
	slices.SortStableFunc(xs, func(a, b models.JournalEntry) int { return strings.Compare(b.Date, a.Date) })
	return xs, nil
}
