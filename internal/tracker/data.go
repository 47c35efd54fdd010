package tracker

import (
	"fmt"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/validation"
)

// Export snapshots every collection.
func (t *Tracker) Export() (models.DataExport, error) {
	var (
		d   models.DataExport
		err error
	)
	if d.Users, err = t.users.All(); err != nil {
		return d, err
	}
	if d.ConsumptionLogs, err = t.logs.All(); err != nil {
		return d, err
	}
	if d.HabitReplacements, err = t.habits.All(); err != nil {
		return d, err
	}
	if d.UserActivities, err = t.activities.All(); err != nil {
		return d, err
	}
	if d.JournalEntries, err = t.entries.All(); err != nil {
		return d, err
	}
	if d.CrisisEvents, err = t.crises.All(); err != nil {
		return d, err
	}
	settings, err := t.Settings()
	if err != nil {
		return d, err
	}
	d.Settings = &settings
	d.ExportDate = t.clock()
	d.AppVersion = constants.AppVersion
	return d, nil
}

// Import replaces each collection present in d. The returned result lists
// integrity problems in the data as imported; they do not stop the import.
func (t *Tracker) Import(d models.DataExport) (validation.Result, error) {
	steps := []struct {
		key  string
		save func() error
	}{
		{constants.KeyUsers, func() error { return saveIfPresent(d.Users, t.users.Save) }},
		{constants.KeyConsumptionLogs, func() error { return saveIfPresent(d.ConsumptionLogs, t.logs.Save) }},
		{constants.KeyHabitReplacements, func() error { return saveIfPresent(d.HabitReplacements, t.habits.Save) }},
		{constants.KeyUserActivities, func() error { return saveIfPresent(d.UserActivities, t.activities.Save) }},
		{constants.KeyJournalEntries, func() error { return saveIfPresent(d.JournalEntries, t.entries.Save) }},
		{constants.KeyCrisisEvents, func() error { return saveIfPresent(d.CrisisEvents, t.crises.Save) }},
		{constants.KeyAppSettings, func() error {
			if d.Settings == nil {
				return nil
			}
			return t.settings.Put(*d.Settings)
		}},
	}
	for _, step := range steps {
		if err := step.save(); err != nil {
			return validation.Result{}, fmt.Errorf("failed to import %s: %w", step.key, err)
		}
	}

	current, err := t.Export()
	if err != nil {
		return validation.Result{}, err
	}
	result := validation.CheckData(current)
	logger.Info("Data imported", "problems", len(result.Problems))
	return result, nil
}

func saveIfPresent[T any](items []T, save func([]T) error) error {
	if items == nil {
		return nil
	}
	return save(items)
}

// Check runs the integrity checks over everything stored.
func (t *Tracker) Check() (validation.Result, error) {
	d, err := t.Export()
	if err != nil {
		return validation.Result{}, err
	}
	return validation.CheckData(d), nil
}

// Clear deletes every collection.
func (t *Tracker) Clear() error {
	for _, key := range constants.AllKeys {
		if err := t.store.Delete(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	logger.Warn("All data cleared")
	return nil
}
