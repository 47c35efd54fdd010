package tracker

import (
	"fmt"
	"slices"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/stats"
)

// Sync recomputes the user's derived state from their consumption logs:
// the trailing average and risk tier, the current and longest streak and
// the last drink date. A week with no logs leaves the average and tier as
// they were. Syncing an unknown user does nothing.
func (t *Tracker) Sync(userID string) error {
	now, err := t.Now()
	if err != nil {
		return err
	}
	logs, err := t.userLogs(userID)
	if err != nil {
		return fmt.Errorf("failed to sync user: %w", err)
	}

	users, err := t.users.All()
	if err != nil {
		return fmt.Errorf("failed to sync user: %w", err)
	}
	idx := slices.IndexFunc(users, func(u models.User) bool { return u.ID == userID })
	if idx < 0 {
		logger.Debug("Sync skipped, no such user", "user", userID)
		return nil
	}
	u := &users[idx]

	recent := stats.FilterLogs(logs, stats.NewWindow(now, constants.SyncWindowDays))
	if avg, ok := stats.AverageDrinks(recent); ok {
		u.CurrentDrinksPerDay = avg
		u.RiskTier = stats.Classify(avg, u.Gender)
	}

	streak := stats.CalculateStreak(logs, now, constants.StreakLookbackDays, u.LongestStreak)
	u.CurrentStreak = streak.Current
	u.LongestStreak = streak.Longest
	if streak.LastDrinkDate != "" {
		u.LastDrinkDate = streak.LastDrinkDate
	}
	u.UpdatedAt = t.clock()

	if err := t.users.Save(users); err != nil {
		return fmt.Errorf("failed to sync user: %w", err)
	}

	logger.Info("User synced",
		"user", userID,
		"recent_logs", len(recent),
		"avg", u.CurrentDrinksPerDay,
		"risk", u.RiskTier,
		"streak", u.CurrentStreak,
		"longest", u.LongestStreak,
	)
	return nil
}
