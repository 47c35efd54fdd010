package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/recoverwise/internal/backup"
	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/storage"
	"github.com/julianstephens/recoverwise/internal/tracker"
	"github.com/julianstephens/recoverwise/internal/utils"
)

// ErrNoProfile is returned when a command needs a profile and none exists.
var ErrNoProfile = errors.New("no profile found")

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	// User selects a profile by id or username. Empty means the first profile.
	User string
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !backup.Supported(c.Store.GetConfigPath()) {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveUser returns the profile the command acts on.
func (c *Context) ResolveUser() (models.User, error) {
	if c.User == "" {
		u, err := c.Tracker.CurrentUser()
		if errors.Is(err, tracker.ErrNotFound) {
			return models.User{}, fmt.Errorf("%w, run '%s init' first", ErrNoProfile, constants.AppName)
		}
		return u, err
	}

	users, err := c.Tracker.ListUsers()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == c.User || strings.EqualFold(u.Username, c.User) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%w matching %q", ErrNoProfile, c.User)
}

// ResolveDate turns "", "today" or "yesterday" into a calendar day in the
// configured timezone and checks explicit dates for format.
func (c *Context) ResolveDate(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today":
		return c.Tracker.Today()
	case "yesterday":
		now, err := c.Tracker.Now()
		if err != nil {
			return "", err
		}
		return utils.DaysAgo(now, 1), nil
	}
	if !utils.ValidateDateFormat(value) {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD, 'today' or 'yesterday')", value)
	}
	return value, nil
}

// ResolveRange returns the inclusive range ending today that covers the
// last days days, unless explicit bounds are given.
func (c *Context) ResolveRange(from, to string, days int) (string, string, error) {
	now, err := c.Tracker.Now()
	if err != nil {
		return "", "", err
	}
	start, end := utils.DaysAgo(now, days-1), utils.Day(now)
	if from != "" {
		if start, err = c.ResolveDate(from); err != nil {
			return "", "", err
		}
	}
	if to != "" {
		if end, err = c.ResolveDate(to); err != nil {
			return "", "", err
		}
	}
	if start > end {
		return "", "", fmt.Errorf("start date %s is after end date %s", start, end)
	}
	return start, end, nil
}

// SplitList splits a comma-separated flag value, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// FormatTimestamp renders t in the configured timezone.
func (c *Context) FormatTimestamp(t time.Time) string {
	now, err := c.Tracker.Now()
	if err != nil {
		return t.Format("2006-01-02 15:04")
	}
	return t.In(now.Location()).Format("2006-01-02 15:04")
}

// Confirm asks a yes/no question on stdin. Anything but y or yes is a no.
func Confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
