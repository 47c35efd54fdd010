package settings

import (
	"fmt"

	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/validation"
)

type SettingsCmd struct {
	List              bool    `short:"l" help:"Show the current settings."`
	Theme             *string `help:"Dashboard theme (light|dark)."`
	Notifications     *bool   `help:"Enable or disable reminders."`
	ReminderFrequency *string `help:"Reminder schedule: daily, hourly, weekly or a cron expression."`
	Privacy           *bool   `help:"Keep all data on this device."`
	Timezone          *string `help:"IANA timezone name, or Local for the system timezone."`
}

func (c *SettingsCmd) Validate() error {
	if c.ReminderFrequency != nil {
		if _, err := validation.ReminderFrequency(*c.ReminderFrequency); err != nil {
			return err
		}
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Tracker.Settings()
	if err != nil {
		return err
	}

	updated := false
	if c.Theme != nil {
		s.Theme = *c.Theme
		updated = true
	}
	if c.Notifications != nil {
		s.NotificationsEnabled = *c.Notifications
		updated = true
	}
	if c.ReminderFrequency != nil {
		s.ReminderFrequency = *c.ReminderFrequency
		updated = true
	}
	if c.Privacy != nil {
		s.PrivacyMode = *c.Privacy
		updated = true
	}
	if c.Timezone != nil {
		s.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if s, err = ctx.Tracker.UpdateSettings(s); err != nil {
			return err
		}
		fmt.Println("Settings updated successfully.")
	} else if !c.List {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	fmt.Println("Current settings:")
	fmt.Printf("  theme:              %s\n", s.Theme)
	fmt.Printf("  notifications:      %t\n", s.NotificationsEnabled)
	fmt.Printf("  reminder_frequency: %s\n", s.ReminderFrequency)
	fmt.Printf("  privacy_mode:       %t\n", s.PrivacyMode)
	fmt.Printf("  export_format:      %s\n", s.DataExportFormat)
	fmt.Printf("  timezone:           %s\n", s.Timezone)
	return nil
}
