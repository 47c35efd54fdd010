// Package tracker is the store-backed service layer. Every call takes the
// owning user id explicitly and reads or writes whole collections through a
// storage.Provider. Consumption writes trigger Sync, which keeps the user's
// derived fields current.
package tracker

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/storage"
	"github.com/julianstephens/recoverwise/internal/utils"
)

// ErrNotFound is returned, wrapped with the id, when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.clock = now
	}
}

type Tracker struct {
	store storage.Provider
	clock func() time.Time

	users      storage.Collection[models.User]
	logs       storage.Collection[models.ConsumptionLog]
	habits     storage.Collection[models.HabitReplacement]
	activities storage.Collection[models.HabitActivity]
	entries    storage.Collection[models.JournalEntry]
	crises     storage.Collection[models.CrisisEvent]
	settings   storage.Document[models.Settings]
}

func New(store storage.Provider, opts ...Option) *Tracker {
	t := &Tracker{
		store:      store,
		clock:      time.Now,
		users:      storage.NewCollection[models.User](store, constants.KeyUsers),
		logs:       storage.NewCollection[models.ConsumptionLog](store, constants.KeyConsumptionLogs),
		habits:     storage.NewCollection[models.HabitReplacement](store, constants.KeyHabitReplacements),
		activities: storage.NewCollection[models.HabitActivity](store, constants.KeyUserActivities),
		entries:    storage.NewCollection[models.JournalEntry](store, constants.KeyJournalEntries),
		crises:     storage.NewCollection[models.CrisisEvent](store, constants.KeyCrisisEvents),
		settings:   storage.NewDocument[models.Settings](store, constants.KeyAppSettings),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Store returns the provider the tracker writes to.
func (t *Tracker) Store() storage.Provider {
	return t.store
}

// Now returns the current time in the configured timezone.
func (t *Tracker) Now() (time.Time, error) {
	s, err := t.Settings()
	if err != nil {
		return time.Time{}, err
	}
	loc, err := utils.LoadLocation(s.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	return t.clock().In(loc), nil
}

// Today returns the current calendar day in the configured timezone.
func (t *Tracker) Today() (string, error) {
	now, err := t.Now()
	if err != nil {
		return "", err
	}
	return utils.Day(now), nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// mutate loads a collection, applies fn and writes the result back.
func mutate[T any](c storage.Collection[T], fn func([]T) ([]T, error)) error {
	items, err := c.All()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	if err := c.Save(items); err != nil {
		return err
	}
	logger.Debug("Collection saved", "key", c.Key(), "records", len(items))
	return nil
}

// owned returns the records belonging to userID, in stored order.
func owned[T any](items []T, userID string, owner func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if owner(item) == userID {
			out = append(out, item)
		}
	}
	return out
}

// indexOwned finds the record with the given id owned by userID, or -1.
func indexOwned[T any](items []T, id, userID string, keys func(T) (string, string)) int {
	return slices.IndexFunc(items, func(item T) bool {
		itemID, owner := keys(item)
		return itemID == id && owner == userID
	})
}

// inRange reports whether day falls within the optional inclusive bounds.
func inRange(day, start, end string) bool {
	if start != "" && day < start {
		return false
	}
	if end != "" && day > end {
		return false
	}
	return true
}
