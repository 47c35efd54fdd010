package crisis

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/tracker"
	"github.com/julianstephens/recoverwise/internal/validation"
)

const timestampLayout = "2006-01-02 15:04"

type CrisisCmd struct {
	Add     AddCmd     `cmd:"" help:"Record a crisis moment."`
	Resolve ResolveCmd `cmd:"" help:"Mark a crisis resolved."`
	Edit    EditCmd    `cmd:"" help:"Edit a crisis event."`
	Delete  DeleteCmd  `cmd:"" help:"Delete a crisis event."`
	List    ListCmd    `cmd:"" default:"1" help:"List crisis events."`
	Stats   StatsCmd   `cmd:"" help:"Show crisis statistics."`
}

var crisisTypes = []models.CrisisType{
	models.CrisisUrge,
	models.CrisisStress,
	models.CrisisEmotional,
	models.CrisisSocial,
	models.CrisisRelapse,
	models.CrisisAnxiety,
}

func validType(t string) error {
	if t == "" {
		return nil
	}
	for _, ct := range crisisTypes {
		if string(ct) == t {
			return nil
		}
	}
	return fmt.Errorf("invalid crisis type %q", t)
}

// parseTimestamp reads "YYYY-MM-DD HH:MM" in the configured timezone.
func parseTimestamp(ctx *cli.Context, value string) (time.Time, error) {
	now, err := ctx.Tracker.Now()
	if err != nil {
		return time.Time{}, err
	}
	ts, err := time.ParseInLocation(timestampLayout, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (expected YYYY-MM-DD HH:MM)", value)
	}
	return ts, nil
}

type AddCmd struct {
	Trigger  string `arg:"" optional:"" help:"What set it off."`
	Type     string `short:"t" help:"Crisis type (urge|stress|emotional|social|relapse|anxiety)."`
	Severity int    `short:"s" help:"Severity (1-10)."`
	Strategy string `help:"Coping strategy used."`
	Outcome  string `short:"o" help:"What happened."`
	Resolved bool   `short:"r" help:"The crisis is already over."`
	At       string `help:"When it happened (YYYY-MM-DD HH:MM); defaults to now."`
}

func (c *AddCmd) Validate() error {
	if err := validType(c.Type); err != nil {
		return err
	}
	return validation.Rating("severity", c.Severity, true)
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}

	e := models.CrisisEvent{
		CrisisType:         models.CrisisType(c.Type),
		TriggerDescription: c.Trigger,
		CopingStrategyUsed: c.Strategy,
		Outcome:            c.Outcome,
		SeverityLevel:      c.Severity,
		Resolved:           c.Resolved,
	}
	if c.At != "" {
		if e.Timestamp, err = parseTimestamp(ctx, c.At); err != nil {
			return err
		}
	}

	saved, err := ctx.Tracker.AddCrisis(u.ID, e)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Recorded %s crisis at %s (severity %d)\n", saved.CrisisType, ctx.FormatTimestamp(saved.Timestamp), saved.SeverityLevel)
	fmt.Printf("  id: %s\n", saved.ID)
	if !saved.Resolved {
		fmt.Println("  Try a habit from 'recoverwise habits catalog --mine', then resolve it here.")
	}
	return nil
}

type ResolveCmd struct {
	ID       string `arg:"" help:"ID of the crisis event."`
	Strategy string `help:"Coping strategy that helped."`
	Outcome  string `short:"o" help:"How it ended."`
}

func (c *ResolveCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	e, err := ctx.Tracker.ResolveCrisis(u.ID, c.ID, c.Strategy, c.Outcome)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Resolved %s crisis from %s\n", e.CrisisType, ctx.FormatTimestamp(e.Timestamp))
	return nil
}

type EditCmd struct {
	ID       string  `arg:"" help:"ID of the crisis event."`
	Trigger  *string `help:"What set it off."`
	Type     *string `short:"t" help:"Crisis type."`
	Severity *int    `short:"s" help:"Severity (1-10)."`
	Strategy *string `help:"Coping strategy used."`
	Outcome  *string `short:"o" help:"What happened."`
	Resolved *bool   `short:"r" help:"Whether the crisis is over."`
	At       *string `help:"When it happened (YYYY-MM-DD HH:MM)."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	e, err := ctx.Tracker.GetCrisis(u.ID, c.ID)
	if err != nil {
		return err
	}

	if c.Trigger != nil {
		e.TriggerDescription = *c.Trigger
	}
	if c.Type != nil {
		e.CrisisType = models.CrisisType(*c.Type)
	}
	if c.Severity != nil {
		e.SeverityLevel = *c.Severity
	}
	if c.Strategy != nil {
		e.CopingStrategyUsed = *c.Strategy
	}
	if c.Outcome != nil {
		e.Outcome = *c.Outcome
	}
	if c.Resolved != nil {
		e.Resolved = *c.Resolved
	}
	if c.At != nil {
		if e.Timestamp, err = parseTimestamp(ctx, *c.At); err != nil {
			return err
		}
	}

	if _, err := ctx.Tracker.UpdateCrisis(u.ID, e); err != nil {
		return err
	}
	fmt.Printf("✓ Updated crisis %s\n", e.ID)
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the crisis event."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	if err := ctx.Tracker.DeleteCrisis(u.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted crisis %s\n", c.ID)
	return nil
}

type ListCmd struct {
	Type       string `short:"t" help:"Only show events of this type."`
	Days       int    `help:"Only show events from the last N days (0 for all)." default:"30"`
	Unresolved bool   `short:"u" help:"Only show events that are still open."`
}

func (c *ListCmd) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("days cannot be negative")
	}
	return validType(c.Type)
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	f := tracker.CrisisFilter{Type: models.CrisisType(c.Type)}
	if c.Days > 0 {
		now, err := ctx.Tracker.Now()
		if err != nil {
			return err
		}
		f.Since = now.AddDate(0, 0, -c.Days)
	}

	xs, err := ctx.Tracker.ListCrises(u.ID, f)
	if err != nil {
		return err
	}

	shown := 0
	for _, e := range xs {
		if c.Unresolved && e.Resolved {
			continue
		}
		shown++
		status := "open"
		if e.Resolved {
			status = "resolved"
		}
		fmt.Printf("  %s  %-9s severity %2d  %-8s %s\n",
			ctx.FormatTimestamp(e.Timestamp), e.CrisisType, e.SeverityLevel, status, e.TriggerDescription)
		if e.CopingStrategyUsed != "" || e.Outcome != "" {
			fmt.Printf("                    coped with: %s  outcome: %s\n", e.CopingStrategyUsed, e.Outcome)
		}
		fmt.Printf("                    id: %s\n", e.ID)
	}
	if shown == 0 {
		fmt.Println("No crisis events found.")
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
	s, err := ctx.Tracker.CrisisStats(u.ID, c.Days)
	if err != nil {
		return err
	}

	fmt.Printf("Crisis events, last %d days:\n", c.Days)
	fmt.Printf("  Total:               %d\n", s.TotalEvents)
	fmt.Printf("  Resolved:            %d (%.0f%%)\n", s.ResolvedEvents, s.ResolutionRate)
	fmt.Printf("  Average severity:    %.1f\n", s.AverageSeverity)
	fmt.Printf("  Common triggers:     %s\n", listOrNone(s.MostCommonTriggers))
	fmt.Printf("  Effective strategies: %s\n", listOrNone(s.MostEffectiveStrategies))
	return nil
}

func listOrNone(xs []string) string {
	if len(xs) == 0 {
		return "none"
	}
	return strings.Join(xs, ", ")
}
