package profile

import (
	"fmt"

	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/tui"
)

type ProfileCmd struct {
	Show   ProfileShowCmd   `cmd:"" help:"Show the profile and its derived state." default:"1"`
	Set    ProfileSetCmd    `cmd:"" help:"Update profile fields."`
	Streak ProfileStreakCmd `cmd:"" help:"Set the streak manually."`
	Sync   ProfileSyncCmd   `cmd:"" help:"Recompute average, risk level and streak from the logs."`
	Delete ProfileDeleteCmd `cmd:"" help:"Delete the profile and all of its records."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	printProfile(u)
	return nil
}

func printProfile(u models.User) {
	lastDrink := u.LastDrinkDate
	if lastDrink == "" {
		lastDrink = "none recorded"
	}
	fmt.Printf("Profile: %s\n", u.Username)
	fmt.Printf("  ID:                 %s\n", u.ID)
	if u.Email != "" {
		fmt.Printf("  Email:              %s\n", u.Email)
	}
	fmt.Printf("  Age:                %d\n", u.Age)
	fmt.Printf("  Gender:             %s\n", u.Gender)
	fmt.Printf("  Drinking type:      %s\n", u.DrinkingType)
	fmt.Printf("  Goal:               %s\n", u.GoalType)
	fmt.Printf("  Drinks per day:     %.2f (target %.2f)\n", u.CurrentDrinksPerDay, u.TargetDrinksPerDay)
	fmt.Printf("  Risk level:         %s\n", tui.RiskStyle(u.RiskTier).Render(string(u.RiskTier)))
	fmt.Printf("  Current streak:     %d days\n", u.CurrentStreak)
	fmt.Printf("  Longest streak:     %d days\n", u.LongestStreak)
	fmt.Printf("  Last drink:         %s\n", lastDrink)
}

type ProfileSetCmd struct {
	Username *string  `help:"Profile name."`
	Email    *string  `help:"Email address."`
	Age      *int     `help:"Age in years."`
	Gender   *string  `help:"Gender (female|male|other)."`
	Type     *string  `help:"Main reason for drinking (stress|social|habit|emotional|boredom)."`
	Goal     *string  `help:"Goal (harm_reduction|moderation|abstinence)."`
	Current  *float64 `help:"Current average drinks per day."`
	Target   *float64 `help:"Target drinks per day."`
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}

	updated := false
	set := func(apply func()) {
		apply()
		updated = true
	}
	if c.Username != nil {
		set(func() { u.Username = *c.Username })
	}
	if c.Email != nil {
		set(func() { u.Email = *c.Email })
	}
	if c.Age != nil {
		set(func() { u.Age = *c.Age })
	}
	if c.Gender != nil {
		set(func() { u.Gender = models.Gender(*c.Gender) })
	}
	if c.Type != nil {
		set(func() { u.DrinkingType = models.DrinkingType(*c.Type) })
	}
	if c.Goal != nil {
		set(func() { u.GoalType = models.GoalType(*c.Goal) })
	}
	if c.Current != nil {
		set(func() { u.CurrentDrinksPerDay = *c.Current })
	}
	if c.Target != nil {
		set(func() { u.TargetDrinksPerDay = *c.Target })
	}

	if !updated {
		fmt.Println("No changes specified. Use flags to update the profile.")
		return nil
	}

	saved, err := ctx.Tracker.SaveUser(u)
	if err != nil {
		return err
	}
	fmt.Println("Profile updated successfully.")
	printProfile(saved)
	return nil
}

type ProfileStreakCmd struct {
	Current int `arg:"" help:"Current streak in days."`
	Longest int `help:"Longest streak in days. Lower values than the stored one are ignored."`
}

func (c *ProfileStreakCmd) Validate() error {
	if c.Current < 0 || c.Longest < 0 {
		return fmt.Errorf("streaks cannot be negative")
	}
	return nil
}

func (c *ProfileStreakCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	updated, err := ctx.Tracker.UpdateStreak(u.ID, models.Streak{Current: c.Current, Longest: c.Longest})
	if err != nil {
		return err
	}
	fmt.Printf("Streak set: current %d days, longest %d days\n", updated.CurrentStreak, updated.LongestStreak)
	return nil
}

type ProfileSyncCmd struct{}

func (c *ProfileSyncCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	if err := ctx.Tracker.Sync(u.ID); err != nil {
		return err
	}
	synced, err := ctx.Tracker.GetUser(u.ID)
	if err != nil {
		return err
	}
	printProfile(synced)
	return nil
}

type ProfileDeleteCmd struct {
	Yes bool `short:"y" help:"Do not ask for confirmation."`
}

func (c *ProfileDeleteCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("⚠️  This deletes %s and every log, activity, journal entry and crisis event they own.\n", u.Username)
		ok, err := cli.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Tracker.DeleteUser(u.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted profile %s\n", u.Username)
	return nil
}
