// Package reminder nudges the user to log today's drinks on the schedule
// configured in settings.
package reminder

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/tracker"
	"github.com/julianstephens/recoverwise/internal/utils"
	"github.com/julianstephens/recoverwise/internal/validation"
)

// ErrDisabled is returned by Run when notifications are turned off.
var ErrDisabled = errors.New("notifications are disabled in settings")

// Reminder is the outcome of one check.
type Reminder struct {
	UserID  string
	Date    string
	Logged  bool
	Message string
}

// Notifier delivers a reminder to the user.
type Notifier func(Reminder)

type Checker struct {
	tracker *tracker.Tracker
	userID  string
	notify  Notifier
}

func NewChecker(t *tracker.Tracker, userID string, notify Notifier) *Checker {
	return &Checker{
		tracker: t,
		userID:  userID,
		notify:  notify,
	}
}

// Check looks for a consumption log for today. The notifier is only called
// when none exists.
func (c *Checker) Check(ctx context.Context) (Reminder, error) {
	if err := ctx.Err(); err != nil {
		return Reminder{}, err
	}

	today, err := c.tracker.Today()
	if err != nil {
		return Reminder{}, fmt.Errorf("failed to determine today: %w", err)
	}

	_, logged, err := c.tracker.ConsumptionOn(c.userID, today)
	if err != nil {
		return Reminder{}, fmt.Errorf("failed to read consumption logs: %w", err)
	}

	r := Reminder{UserID: c.userID, Date: today, Logged: logged}
	if logged {
		logger.Debug("Consumption already logged", "date", today)
		return r, nil
	}

	r.Message = fmt.Sprintf("No drinks logged for %s yet. Log a sober day with '%s drinks log 0'.", today, constants.AppName)
	if c.notify != nil {
		c.notify(r)
	}
	return r, nil
}

// Run schedules Check using the reminder frequency from settings and blocks
// until ctx is cancelled.
func (c *Checker) Run(ctx context.Context) error {
	settings, err := c.tracker.Settings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		return ErrDisabled
	}

	expr, err := validation.ReminderFrequency(settings.ReminderFrequency)
	if err != nil {
		return err
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}

	sched := cron.New(cron.WithLocation(loc))
	if _, err := sched.AddFunc(expr, func() { c.runOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	logger.Info("Starting reminder schedule", "schedule", expr, "timezone", loc.String())
	sched.Start()

	<-ctx.Done()

	stopped := sched.Stop()
	<-stopped.Done()
	logger.Info("Reminder schedule stopped")
	return nil
}

func (c *Checker) runOnce(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, constants.ReminderCheckTimeout)
	defer cancel()

	if _, err := c.Check(ctx); err != nil {
		logger.Error("Reminder check failed", "error", err)
	}
}
