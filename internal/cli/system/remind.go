package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/reminder"
)

type RemindCmd struct {
	Once bool `help:"Check once and exit instead of running on the reminder schedule."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}

	checker := reminder.NewChecker(ctx.Tracker, u.ID, printReminder)

	if c.Once {
		r, err := checker.Check(context.Background())
		if err != nil {
			return err
		}
		if r.Logged {
			fmt.Printf("✓ Today (%s) is already logged.\n", r.Date)
		}
		return nil
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Reminders running. Press Ctrl+C to stop.")
	if err := checker.Run(runCtx); err != nil {
		if errors.Is(err, reminder.ErrDisabled) {
			return fmt.Errorf("%w (enable them with 'recoverwise settings --notifications')", err)
		}
		return err
	}
	return nil
}

func printReminder(r reminder.Reminder) {
	logger.Info("Reminder sent", "date", r.Date)
	fmt.Printf("🔔 %s\n", r.Message)
}
