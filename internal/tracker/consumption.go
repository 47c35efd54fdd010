package tracker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/stats"
	"github.com/julianstephens/recoverwise/internal/utils"
	"github.com/julianstephens/recoverwise/internal/validation"
)

func logKeys(l models.ConsumptionLog) (string, string) { return l.ID, l.UserID }

// LogConsumption records a day's drinking. An existing log for the same user
// and date is overwritten in place, keeping its id and creation time.
func (t *Tracker) LogConsumption(userID string, l models.ConsumptionLog) (models.ConsumptionLog, error) {
	if l.Date == "" {
		today, err := t.Today()
		if err != nil {
			return models.ConsumptionLog{}, err
		}
		l.Date = today
	}
	l.UserID = userID
	l.DrinkTypes = cleanList(l.DrinkTypes)
	l.Triggers = cleanList(l.Triggers)
	if err := validation.Consumption(l); err != nil {
		return models.ConsumptionLog{}, err
	}

	now := t.clock()
	err := mutate(t.logs, func(logs []models.ConsumptionLog) ([]models.ConsumptionLog, error) {
		idx := slices.IndexFunc(logs, func(x models.ConsumptionLog) bool {
			return x.UserID == userID && x.Date == l.Date
		})
		if idx >= 0 {
			l.ID = logs[idx].ID
			l.CreatedAt = logs[idx].CreatedAt
			l.UpdatedAt = now
			logs[idx] = l
			logger.Debug("Consumption log overwritten", "user", userID, "date", l.Date)
			return logs, nil
		}
		l.ID = utils.NewID()
		l.CreatedAt = now
		l.UpdatedAt = now
		return append(logs, l), nil
	})
	if err != nil {
		return models.ConsumptionLog{}, fmt.Errorf("failed to log consumption: %w", err)
	}

	if err := t.Sync(userID); err != nil {
		return l, err
	}
	return l, nil
}

// UpdateConsumption replaces the log with l.ID. Moving a log onto a date
// that already has one drops the other log, so a day never holds two.
func (t *Tracker) UpdateConsumption(userID string, l models.ConsumptionLog) (models.ConsumptionLog, error) {
	l.UserID = userID
	l.DrinkTypes = cleanList(l.DrinkTypes)
	l.Triggers = cleanList(l.Triggers)
	if err := validation.Consumption(l); err != nil {
		return models.ConsumptionLog{}, err
	}

	err := mutate(t.logs, func(logs []models.ConsumptionLog) ([]models.ConsumptionLog, error) {
		idx := indexOwned(logs, l.ID, userID, logKeys)
		if idx < 0 {
			return nil, notFound("consumption log", l.ID)
		}
		l.CreatedAt = logs[idx].CreatedAt
		l.UpdatedAt = t.clock()
		logs[idx] = l
		return slices.DeleteFunc(logs, func(x models.ConsumptionLog) bool {
			return x.UserID == userID && x.Date == l.Date && x.ID != l.ID
		}), nil
	})
	if err != nil {
		return models.ConsumptionLog{}, fmt.Errorf("failed to update consumption log: %w", err)
	}

	if err := t.Sync(userID); err != nil {
		return l, err
	}
	return l, nil
}

func (t *Tracker) DeleteConsumption(userID, id string) error {
	err := mutate(t.logs, func(logs []models.ConsumptionLog) ([]models.ConsumptionLog, error) {
		idx := indexOwned(logs, id, userID, logKeys)
		if idx < 0 {
			return nil, notFound("consumption log", id)
		}
		return slices.Delete(logs, idx, idx+1), nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete consumption log: %w", err)
	}
	return t.Sync(userID)
}

func (t *Tracker) GetConsumption(userID, id string) (models.ConsumptionLog, error) {
	logs, err := t.logs.All()
	if err != nil {
		return models.ConsumptionLog{}, err
	}
	idx := indexOwned(logs, id, userID, logKeys)
	if idx < 0 {
		return models.ConsumptionLog{}, notFound("consumption log", id)
	}
	return logs[idx], nil
}

// ConsumptionOn returns the user's log for date. ok is false when the day
// has no log.
func (t *Tracker) ConsumptionOn(userID, date string) (l models.ConsumptionLog, ok bool, err error) {
	logs, err := t.logs.All()
	if err != nil {
		return l, false, err
	}
	idx := slices.IndexFunc(logs, func(x models.ConsumptionLog) bool {
		return x.UserID == userID && x.Date == date
	})
	if idx < 0 {
		return l, false, nil
	}
	return logs[idx], true, nil
}

// ListConsumption returns the user's logs between the optional inclusive
// bounds, oldest first.
func (t *Tracker) ListConsumption(userID, start, end string) ([]models.ConsumptionLog, error) {
	logs, err := t.userLogs(userID)
	if err != nil {
		return nil, err
	}
	logs = slices.DeleteFunc(logs, func(l models.ConsumptionLog) bool { return !inRange(l.Date, start, end) })
	slices.SortStableFunc(logs, func(a, b models.ConsumptionLog) int { return strings.Compare(a.Date, b.Date) })
	return logs, nil
}

// ConsumptionStats summarizes the user's last days days.
func (t *Tracker) ConsumptionStats(userID string, days int) (models.ConsumptionStats, error) {
	now, err := t.Now()
	if err != nil {
		return models.ConsumptionStats{}, err
	}
	logs, err := t.userLogs(userID)
	if err != nil {
		return models.ConsumptionStats{}, err
	}
	window := stats.NewWindow(now, days)
	return stats.SummarizeConsumption(stats.FilterLogs(logs, window), days), nil
}

func (t *Tracker) userLogs(userID string) ([]models.ConsumptionLog, error) {
	logs, err := t.logs.All()
	if err != nil {
		return nil, err
	}
	return owned(logs, userID, func(l models.ConsumptionLog) string { return l.UserID }), nil
}

// cleanList trims entries and drops blanks.
func cleanList(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x = strings.TrimSpace(x); x != "" {
			out = append(out, x)
		}
	}
	return out
}
