package tracker

import (
	"fmt"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/validation"
)

// DefaultSettings returns the settings used before any are saved.
func DefaultSettings() models.Settings {
	return models.Settings{
		Theme:                constants.DefaultTheme,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		ReminderFrequency:    constants.DefaultReminderFrequency,
		PrivacyMode:          constants.DefaultPrivacyMode,
		DataExportFormat:     constants.DefaultExportFormat,
		Timezone:             constants.DefaultTimezone,
	}
}

// Settings returns the stored settings, with blank string fields filled from
// the defaults.
func (t *Tracker) Settings() (models.Settings, error) {
	s, ok, err := t.settings.Get()
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return DefaultSettings(), nil
	}
	d := DefaultSettings()
	if s.Theme == "" {
		s.Theme = d.Theme
	}
	if s.ReminderFrequency == "" {
		s.ReminderFrequency = d.ReminderFrequency
	}
	if s.DataExportFormat == "" {
		s.DataExportFormat = d.DataExportFormat
	}
	if s.Timezone == "" {
		s.Timezone = d.Timezone
	}
	return s, nil
}

func (t *Tracker) UpdateSettings(s models.Settings) (models.Settings, error) {
	if err := validation.Settings(s); err != nil {
		return models.Settings{}, err
	}
	if err := t.settings.Put(s); err != nil {
		return models.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return s, nil
}
