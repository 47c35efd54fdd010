package drinks

import (
	"fmt"
	"strings"

	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/validation"
)

type DrinksCmd struct {
	Log    LogCmd    `cmd:"" help:"Log drinks for a day (0 for a sober day)."`
	Edit   EditCmd   `cmd:"" help:"Edit a consumption log."`
	Delete DeleteCmd `cmd:"" help:"Delete a consumption log."`
	List   ListCmd   `cmd:"" help:"List consumption logs."`
	Stats  StatsCmd  `cmd:"" help:"Show consumption statistics."`
}

type LogCmd struct {
	Count      float64 `arg:"" help:"Number of standard drinks."`
	Date       string  `short:"d" help:"Day to log (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
	Types      string  `short:"t" help:"Comma-separated drink types (beer, wine, ...)."`
	Triggers   string  `help:"Comma-separated triggers."`
	MoodBefore int     `help:"Mood before drinking (1-10)."`
	MoodAfter  int     `help:"Mood after drinking (1-10)."`
	Notes      string  `short:"n" help:"Free-form notes."`
}

func (c *LogCmd) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("drink count cannot be negative")
	}
	if err := validation.Rating("mood before", c.MoodBefore, true); err != nil {
		return err
	}
	return validation.Rating("mood after", c.MoodAfter, true)
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	l, err := ctx.Tracker.LogConsumption(u.ID, models.ConsumptionLog{
		Date:           date,
		DrinksConsumed: c.Count,
		DrinkTypes:     cli.SplitList(c.Types),
		Triggers:       cli.SplitList(c.Triggers),
		MoodBefore:     c.MoodBefore,
		MoodAfter:      c.MoodAfter,
		Notes:          c.Notes,
	})
	if err != nil {
		return err
	}

	if l.DrinksConsumed == 0 {
		fmt.Printf("✓ Logged a sober day for %s\n", l.Date)
	} else {
		fmt.Printf("✓ Logged %g drinks for %s\n", l.DrinksConsumed, l.Date)
	}

	synced, err := ctx.Tracker.GetUser(u.ID)
	if err != nil {
		return err
	}
	fmt.Printf("  Current streak: %d days (longest %d), risk level: %s\n",
		synced.CurrentStreak, synced.LongestStreak, synced.RiskTier)
	return nil
}

type EditCmd struct {
	ID         string   `arg:"" help:"ID of the log to edit."`
	Count      *float64 `help:"Number of standard drinks."`
	Date       *string  `short:"d" help:"Move the log to another day."`
	Types      *string  `short:"t" help:"Comma-separated drink types."`
	Triggers   *string  `help:"Comma-separated triggers."`
	MoodBefore *int     `help:"Mood before drinking (1-10, 0 to clear)."`
	MoodAfter  *int     `help:"Mood after drinking (1-10, 0 to clear)."`
	Notes      *string  `short:"n" help:"Free-form notes."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	l, err := ctx.Tracker.GetConsumption(u.ID, c.ID)
	if err != nil {
		return err
	}

	if c.Count != nil {
		l.DrinksConsumed = *c.Count
	}
	if c.Date != nil {
		if l.Date, err = ctx.ResolveDate(*c.Date); err != nil {
			return err
		}
	}
	if c.Types != nil {
		l.DrinkTypes = cli.SplitList(*c.Types)
	}
	if c.Triggers != nil {
		l.Triggers = cli.SplitList(*c.Triggers)
	}
	if c.MoodBefore != nil {
		l.MoodBefore = *c.MoodBefore
	}
	if c.MoodAfter != nil {
		l.MoodAfter = *c.MoodAfter
	}
	if c.Notes != nil {
		l.Notes = *c.Notes
	}

	updated, err := ctx.Tracker.UpdateConsumption(u.ID, l)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Updated log for %s\n", updated.Date)
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the log to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	l, err := ctx.Tracker.GetConsumption(u.ID, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.DeleteConsumption(u.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted log for %s\n", l.Date)
	return nil
}

type ListCmd struct {
	From string `help:"First day to include."`
	To   string `help:"Last day to include."`
	Days int    `help:"Number of days to show when --from is not given." default:"30"`
}

func (c *ListCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	start, end, err := ctx.ResolveRange(c.From, c.To, c.Days)
	if err != nil {
		return err
	}
	logs, err := ctx.Tracker.ListConsumption(u.ID, start, end)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Printf("No consumption logs between %s and %s.\n", start, end)
		return nil
	}

	fmt.Printf("Consumption logs %s to %s:\n\n", start, end)
	for _, l := range logs {
		mood := "-"
		if l.HasMood() {
			mood = fmt.Sprintf("%d→%d", l.MoodBefore, l.MoodAfter)
		}
		fmt.Printf("  %s  %5g drinks  mood %-6s %s\n", l.Date, l.DrinksConsumed, mood, strings.Join(l.Triggers, ", "))
		fmt.Printf("              id: %s\n", l.ID)
	}
	return nil
}

type StatsCmd struct {
	Days int `help:"Window size in days." default:"30"`
}

func (c *StatsCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	s, err := ctx.Tracker.ConsumptionStats(u.ID, c.Days)
	if err != nil {
		return err
	}

	triggers := "none"
	if len(s.MostCommonTriggers) > 0 {
		triggers = strings.Join(s.MostCommonTriggers, ", ")
	}

	fmt.Printf("Last %d days:\n", s.Days)
	fmt.Printf("  Total drinks:       %g\n", s.TotalDrinks)
	fmt.Printf("  Average per day:    %.2f\n", s.AveragePerDay)
	fmt.Printf("  Drinking days:      %d\n", s.DrinkingDays)
	fmt.Printf("  Sober days:         %d\n", s.SoberDays)
	fmt.Printf("  Top %d triggers:     %s\n", constants.TopK, triggers)
	fmt.Printf("  Mood improvement:   %+.2f\n", s.MoodImprovement)
	return nil
}
