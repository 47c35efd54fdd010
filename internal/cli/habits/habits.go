package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/tracker"
	"github.com/julianstephens/recoverwise/internal/validation"
)

type HabitsCmd struct {
	Catalog       CatalogCmd       `cmd:"" default:"1" help:"Browse the habit-replacement catalog."`
	Show          ShowCmd          `cmd:"" help:"Show one habit in detail."`
	Do            DoCmd            `cmd:"" help:"Record a habit you practised."`
	Edit          EditCmd          `cmd:"" help:"Edit a recorded activity."`
	Delete        DeleteCmd        `cmd:"" help:"Delete a recorded activity."`
	Activities    ActivitiesCmd    `cmd:"" help:"List recorded activities."`
	Effectiveness EffectivenessCmd `cmd:"" help:"Rank habits by how well they worked."`
}

type CatalogCmd struct {
	Category string `short:"c" help:"Only show habits in this category."`
	Mine     bool   `short:"m" help:"Only show habits suited to your drinking type."`
	Inactive bool   `help:"Include retired habits."`
}

func (c *CatalogCmd) Run(ctx *cli.Context) error {
	f := tracker.HabitFilter{
		Category:        models.HabitCategory(c.Category),
		IncludeInactive: c.Inactive,
	}
	if c.Mine {
		u, err := ctx.ResolveUser()
		if err != nil {
			return err
		}
		f.DrinkingType = u.DrinkingType
	}

	habits, err := ctx.Tracker.Catalog(f)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits match.")
		return nil
	}

	for _, h := range habits {
		fmt.Printf("  %-32s %-14s %3d min  difficulty %d\n", h.Title, h.Category, h.DurationMinutes, h.DifficultyLevel)
		fmt.Printf("    %s\n", h.Description)
	}
	return nil
}

type ShowCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	h, err := ctx.Tracker.Habit(c.Habit)
	if err != nil {
		return err
	}

	types := make([]string, len(h.DrinkingTypes))
	for i, t := range h.DrinkingTypes {
		types[i] = string(t)
	}
	equipment := "none"
	if len(h.EquipmentNeeded) > 0 {
		equipment = strings.Join(h.EquipmentNeeded, ", ")
	}

	fmt.Printf("%s\n\n", h.Title)
	fmt.Printf("  %s\n\n", h.Description)
	fmt.Printf("  Category:    %s\n", h.Category)
	fmt.Printf("  Helps with:  %s\n", strings.Join(types, ", "))
	fmt.Printf("  Duration:    %d min\n", h.DurationMinutes)
	fmt.Printf("  Difficulty:  %d/5\n", h.DifficultyLevel)
	fmt.Printf("  Where:       %s\n", h.LocationRequired)
	fmt.Printf("  Equipment:   %s\n\n", equipment)
	fmt.Printf("  %s\n", h.Instructions)
	fmt.Printf("\n  id: %s\n", h.ID)
	return nil
}

type DoCmd struct {
	Habit    string `arg:"" help:"Habit id or title."`
	Date     string `short:"d" help:"Day it was done." default:"today"`
	Duration int    `help:"Minutes spent; defaults to the habit's suggested duration."`
	Rating   int    `short:"r" help:"How effective it was (1-10)."`
	Urge     bool   `short:"u" help:"It replaced an urge to drink."`
	Notes    string `short:"n" help:"Free-form notes."`
}

func (c *DoCmd) Validate() error {
	if c.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	return validation.Rating("rating", c.Rating, true)
}

func (c *DoCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	h, err := ctx.Tracker.Habit(c.Habit)
	if err != nil {
		return err
	}

	duration := c.Duration
	if duration == 0 {
		duration = h.DurationMinutes
	}
	a, err := ctx.Tracker.AddActivity(u.ID, models.HabitActivity{
		HabitReplacementID:   h.ID,
		Date:                 date,
		DurationMinutes:      duration,
		EffectivenessRating:  c.Rating,
		ReplacedDrinkingUrge: c.Urge,
		Notes:                c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Recorded %s on %s (%d min, rated %d/10)\n", h.Title, a.Date, a.DurationMinutes, a.EffectivenessRating)
	if a.ReplacedDrinkingUrge {
		fmt.Println("  Nice work replacing an urge.")
	}
	return nil
}

type EditCmd struct {
	ID       string  `arg:"" help:"ID of the activity to edit."`
	Date     *string `short:"d" help:"Day it was done."`
	Duration *int    `help:"Minutes spent."`
	Rating   *int    `short:"r" help:"How effective it was (1-10)."`
	Urge     *bool   `short:"u" help:"It replaced an urge to drink."`
	Notes    *string `short:"n" help:"Free-form notes."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	a, err := findActivity(ctx, u.ID, c.ID)
	if err != nil {
		return err
	}

	if c.Date != nil {
		if a.Date, err = ctx.ResolveDate(*c.Date); err != nil {
			return err
		}
	}
	if c.Duration != nil {
		a.DurationMinutes = *c.Duration
	}
	if c.Rating != nil {
		a.EffectivenessRating = *c.Rating
	}
	if c.Urge != nil {
		a.ReplacedDrinkingUrge = *c.Urge
	}
	if c.Notes != nil {
		a.Notes = *c.Notes
	}

	if _, err := ctx.Tracker.UpdateActivity(u.ID, a); err != nil {
		return err
	}
	fmt.Printf("✓ Updated activity %s\n", a.ID)
	return nil
}

func findActivity(ctx *cli.Context, userID, id string) (models.HabitActivity, error) {
	xs, err := ctx.Tracker.ListActivities(userID, "", "")
	if err != nil {
		return models.HabitActivity{}, err
	}
	for _, a := range xs {
		if a.ID == id {
			return a, nil
		}
	}
	return models.HabitActivity{}, fmt.Errorf("activity %s: %w", id, tracker.ErrNotFound)
}

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the activity to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	if err := ctx.Tracker.DeleteActivity(u.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted activity %s\n", c.ID)
	return nil
}

type ActivitiesCmd struct {
	From string `help:"First day to include."`
	To   string `help:"Last day to include."`
	Days int    `help:"Number of days to show when --from is not given." default:"30"`
}

func (c *ActivitiesCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *ActivitiesCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	start, end, err := ctx.ResolveRange(c.From, c.To, c.Days)
	if err != nil {
		return err
	}
	xs, err := ctx.Tracker.ListActivities(u.ID, start, end)
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		fmt.Printf("No activities between %s and %s.\n", start, end)
		return nil
	}

	catalog, err := ctx.Tracker.Catalog(tracker.HabitFilter{IncludeInactive: true})
	if err != nil {
		return err
	}
	titles := make(map[string]string, len(catalog))
	for _, h := range catalog {
		titles[h.ID] = h.Title
	}

	for _, a := range xs {
		title, ok := titles[a.HabitReplacementID]
		if !ok {
			title = "(unknown habit)"
		}
		urge := ""
		if a.ReplacedDrinkingUrge {
			urge = "  replaced urge"
		}
		fmt.Printf("  %s  %-32s %3d min  %2d/10%s\n", a.Date, title, a.DurationMinutes, a.EffectivenessRating, urge)
		fmt.Printf("              id: %s\n", a.ID)
	}
	return nil
}

type EffectivenessCmd struct {
	Days int `help:"Window size in days." default:"30"`
}

func (c *EffectivenessCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *EffectivenessCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	rows, err := ctx.Tracker.HabitEffectiveness(u.ID, c.Days)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Printf("No habits practised in the last %d days.\n", c.Days)
		return nil
	}

	fmt.Printf("Habit effectiveness, last %d days:\n\n", c.Days)
	for i, r := range rows {
		fmt.Printf("  %d. %-32s uses %-3d avg %.1f/10  %.0f min  urges replaced %d\n",
			i+1, r.Title, r.TotalUses, r.AvgEffectiveness, r.AvgDuration, r.UrgesReplaced)
	}
	return nil
}
