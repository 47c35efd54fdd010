package tracker

import (
	"fmt"
	"slices"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/stats"
	"github.com/julianstephens/recoverwise/internal/utils"
	"github.com/julianstephens/recoverwise/internal/validation"
)

func applyUserDefaults(u *models.User) {
	if u.Username == "" {
		u.Username = constants.DefaultUsername
	}
	if u.Age == 0 {
		u.Age = constants.DefaultAge
	}
	if u.Gender == "" {
		u.Gender = constants.DefaultGender
	}
	if u.DrinkingType == "" {
		u.DrinkingType = constants.DefaultDrinkingType
	}
	if u.GoalType == "" {
		u.GoalType = constants.DefaultGoalType
	}
}

// SaveUser creates the profile when u.ID is empty and replaces the stored
// profile fields otherwise. Streak state stays with UpdateStreak and Sync:
// an update keeps the stored current streak and last drink date, and the
// longest streak never drops. The risk tier is always recomputed from the
// saved average.
func (t *Tracker) SaveUser(u models.User) (models.User, error) {
	applyUserDefaults(&u)
	if err := validation.User(u); err != nil {
		return models.User{}, err
	}

	now := t.clock()
	u.RiskTier = stats.Classify(u.CurrentDrinksPerDay, u.Gender)
	u.UpdatedAt = now

	err := mutate(t.users, func(users []models.User) ([]models.User, error) {
		if u.ID == "" {
			u.ID = utils.NewID()
			u.CreatedAt = now
			return append(users, u), nil
		}
		idx := slices.IndexFunc(users, func(x models.User) bool { return x.ID == u.ID })
		if idx < 0 {
			return nil, notFound("user", u.ID)
		}
		stored := users[idx]
		u.CreatedAt = stored.CreatedAt
		u.CurrentStreak = stored.CurrentStreak
		u.LongestStreak = max(stored.LongestStreak, u.LongestStreak)
		u.LastDrinkDate = stored.LastDrinkDate
		users[idx] = u
		return users, nil
	})
	if err != nil {
		return models.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User saved", "user", u.ID, "risk", u.RiskTier)
	return u, nil
}

func (t *Tracker) GetUser(userID string) (models.User, error) {
	users, err := t.users.All()
	if err != nil {
		return models.User{}, err
	}
	idx := slices.IndexFunc(users, func(u models.User) bool { return u.ID == userID })
	if idx < 0 {
		return models.User{}, notFound("user", userID)
	}
	return users[idx], nil
}

// CurrentUser returns the first profile created on this device.
func (t *Tracker) CurrentUser() (models.User, error) {
	users, err := t.users.All()
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, fmt.Errorf("no profile: %w", ErrNotFound)
	}
	return users[0], nil
}

func (t *Tracker) ListUsers() ([]models.User, error) {
	return t.users.All()
}

// UpdateStreak applies a streak directly. Current is taken as given, so it
// can be reset to zero; the longest streak only ever grows.
func (t *Tracker) UpdateStreak(userID string, s models.Streak) (models.User, error) {
	var updated models.User
	err := mutate(t.users, func(users []models.User) ([]models.User, error) {
		idx := slices.IndexFunc(users, func(u models.User) bool { return u.ID == userID })
		if idx < 0 {
			return nil, notFound("user", userID)
		}
		u := &users[idx]
		u.CurrentStreak = max(s.Current, 0)
		u.LongestStreak = max(u.LongestStreak, s.Longest, u.CurrentStreak)
		if s.LastDrinkDate != "" {
			u.LastDrinkDate = s.LastDrinkDate
		}
		u.UpdatedAt = t.clock()
		updated = *u
		return users, nil
	})
	if err != nil {
		return models.User{}, fmt.Errorf("failed to update streak: %w", err)
	}
	return updated, nil
}

// DeleteUser removes the profile and every record it owns.
func (t *Tracker) DeleteUser(userID string) error {
	if _, err := t.GetUser(userID); err != nil {
		return err
	}

	steps := []func() error{
		func() error {
			return mutate(t.logs, func(xs []models.ConsumptionLog) ([]models.ConsumptionLog, error) {
				return slices.DeleteFunc(xs, func(x models.ConsumptionLog) bool { return x.UserID == userID }), nil
			})
		},
		func() error {
			return mutate(t.activities, func(xs []models.HabitActivity) ([]models.HabitActivity, error) {
				return slices.DeleteFunc(xs, func(x models.HabitActivity) bool { return x.UserID == userID }), nil
			})
		},
		func() error {
			return mutate(t.entries, func(xs []models.JournalEntry) ([]models.JournalEntry, error) {
				return slices.DeleteFunc(xs, func(x models.JournalEntry) bool { return x.UserID == userID }), nil
			})
		},
		func() error {
			return mutate(t.crises, func(xs []models.CrisisEvent) ([]models.CrisisEvent, error) {
				return slices.DeleteFunc(xs, func(x models.CrisisEvent) bool { return x.UserID == userID }), nil
			})
		},
		func() error {
			return mutate(t.users, func(xs []models.User) ([]models.User, error) {
				return slices.DeleteFunc(xs, func(x models.User) bool { return x.ID == userID }), nil
			})
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}
	}

	logger.Info("User deleted", "user", userID)
	return nil
}
