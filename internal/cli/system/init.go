package system

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/recoverwise/internal/backup"
	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/validation"
)

type InitCmd struct {
	Force       bool    `help:"Delete an existing SQLite or JSON store before initialization."`
	Interactive bool    `short:"i" help:"Fill in the profile with an interactive form."`
	Username    string  `help:"Profile name."`
	Email       string  `help:"Email address (kept on this device only)."`
	Age         int     `help:"Age in years."`
	Gender      string  `help:"Gender (female|male|other)."`
	Type        string  `help:"Main reason for drinking (stress|social|habit|emotional|boredom)."`
	Goal        string  `help:"Goal (harm_reduction|moderation|abstinence)."`
	Current     float64 `help:"Current average drinks per day."`
	Target      float64 `help:"Target drinks per day."`
}

func (c *InitCmd) Validate() error {
	// Blank fields are filled with defaults, so only set values are checked
	u := c.profile()
	if u.Gender == "" {
		u.Gender = models.GenderOther
	}
	if u.DrinkingType == "" {
		u.DrinkingType = models.DrinkingStress
	}
	if u.GoalType == "" {
		u.GoalType = models.GoalHarmReduction
	}
	return validation.User(u)
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized recoverwise storage at: %s\n", ctx.Store.GetConfigPath())

	seeded, err := ctx.Tracker.SeedCatalog()
	if err != nil {
		return fmt.Errorf("failed to seed habit catalog: %w", err)
	}
	if seeded > 0 {
		fmt.Printf("Added %d habit replacements to the catalog.\n", seeded)
	}

	users, err := ctx.Tracker.ListUsers()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		fmt.Printf("Existing profile found: %s\n", users[0].Username)
		return nil
	}

	u := c.profile()
	if c.Interactive {
		if err := profileForm(&u).Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
	}

	saved, err := ctx.Tracker.SaveUser(u)
	if err != nil {
		return err
	}
	fmt.Printf("Created profile %s (risk level: %s)\n", saved.Username, saved.RiskTier)
	return nil
}

// reset removes a file-backed store so Init can start over.
func (c *InitCmd) reset(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if !backup.Supported(path) {
		return fmt.Errorf("--force is only supported for SQLite and JSON stores")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to access existing database: %w", err)
	}

	// Close first to release file locks
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing database: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete existing database: %w", err)
	}
	fmt.Printf("Deleted existing database at: %s\n", path)
	return nil
}

// profile builds a user from the flags. Empty fields get defaults on save.
func (c *InitCmd) profile() models.User {
	return models.User{
		Username:            c.Username,
		Email:               c.Email,
		Age:                 c.Age,
		Gender:              models.Gender(c.Gender),
		DrinkingType:        models.DrinkingType(c.Type),
		GoalType:            models.GoalType(c.Goal),
		CurrentDrinksPerDay: c.Current,
		TargetDrinksPerDay:  c.Target,
	}
}

func profileForm(u *models.User) *huh.Form {
	age := ""
	if u.Age > 0 {
		age = strconv.Itoa(u.Age)
	}
	current := strconv.FormatFloat(u.CurrentDrinksPerDay, 'f', -1, 64)
	target := strconv.FormatFloat(u.TargetDrinksPerDay, 'f', -1, 64)

	if u.Gender == "" {
		u.Gender = models.GenderOther
	}
	if u.DrinkingType == "" {
		u.DrinkingType = models.DrinkingStress
	}
	if u.GoalType == "" {
		u.GoalType = models.GoalHarmReduction
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Value(&u.Username),
			huh.NewInput().
				Title("Age").
				Value(&age).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 || n > 130 {
						return fmt.Errorf("enter an age between 0 and 130")
					}
					u.Age = n
					return nil
				}),
			huh.NewSelect[models.Gender]().
				Title("Gender").
				Options(
					huh.NewOption("Female", models.GenderFemale),
					huh.NewOption("Male", models.GenderMale),
					huh.NewOption("Other / prefer not to say", models.GenderOther),
				).
				Value(&u.Gender),
		),
		huh.NewGroup(
			huh.NewSelect[models.DrinkingType]().
				Title("When do you usually drink?").
				Options(
					huh.NewOption("To handle stress", models.DrinkingStress),
					huh.NewOption("In social settings", models.DrinkingSocial),
					huh.NewOption("Out of habit", models.DrinkingHabit),
					huh.NewOption("To cope with emotions", models.DrinkingEmotional),
					huh.NewOption("When bored", models.DrinkingBoredom),
				).
				Value(&u.DrinkingType),
			huh.NewSelect[models.GoalType]().
				Title("What is your goal?").
				Options(
					huh.NewOption("Reduce harm", models.GoalHarmReduction),
					huh.NewOption("Drink in moderation", models.GoalModeration),
					huh.NewOption("Stop drinking", models.GoalAbstinence),
				).
				Value(&u.GoalType),
			huh.NewInput().
				Title("Drinks per day right now").
				Value(&current).
				Validate(drinksValidator(&u.CurrentDrinksPerDay)),
			huh.NewInput().
				Title("Target drinks per day").
				Value(&target).
				Validate(drinksValidator(&u.TargetDrinksPerDay)),
		),
	)
}

// drinksValidator parses a non-negative number into dst as the form is filled.
func drinksValidator(dst *float64) func(string) error {
	return func(s string) error {
		if s == "" {
			*dst = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return fmt.Errorf("enter a number of drinks, 0 or more")
		}
		*dst = v
		return nil
	}
}
