package journal

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/models"
	"github.com/julianstephens/recoverwise/internal/tracker"
	"github.com/julianstephens/recoverwise/internal/validation"
)

type JournalCmd struct {
	Add    AddCmd    `cmd:"" help:"Write a journal entry."`
	Edit   EditCmd   `cmd:"" help:"Edit a journal entry."`
	Delete DeleteCmd `cmd:"" help:"Delete a journal entry."`
	List   ListCmd   `cmd:"" default:"1" help:"List journal entries."`
}

var entryTypes = []models.EntryType{
	models.EntryDailyReflection,
	models.EntryGratitude,
	models.EntryTriggerAnalysis,
	models.EntryGoalSetting,
	models.EntryProgressReview,
}

func validType(t string) error {
	if t == "" {
		return nil
	}
	for _, et := range entryTypes {
		if string(et) == t {
			return nil
		}
	}
	return fmt.Errorf("invalid entry type %q", t)
}

type AddCmd struct {
	Title       string `arg:"" optional:"" help:"Entry title."`
	Content     string `short:"c" help:"Entry text."`
	Type        string `short:"t" help:"Entry type (daily_reflection|gratitude|trigger_analysis|goal_setting|progress_review)."`
	Date        string `short:"d" help:"Day the entry is about." default:"today"`
	Mood        int    `short:"m" help:"Mood (1-10)."`
	Stress      int    `short:"s" help:"Stress level (1-10)."`
	Confidence  int    `help:"Confidence level (1-10)."`
	Interactive bool   `short:"i" help:"Write the entry in a form."`
}

func (c *AddCmd) Validate() error {
	if err := validType(c.Type); err != nil {
		return err
	}
	if err := validation.Rating("mood", c.Mood, true); err != nil {
		return err
	}
	if err := validation.Rating("stress", c.Stress, true); err != nil {
		return err
	}
	if err := validation.Rating("confidence", c.Confidence, true); err != nil {
		return err
	}
	if !c.Interactive && c.Title == "" && c.Content == "" {
		return fmt.Errorf("a title or --content is required unless --interactive is set")
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	e := models.JournalEntry{
		Date:            date,
		EntryType:       models.EntryType(c.Type),
		Title:           c.Title,
		Content:         c.Content,
		MoodRating:      c.Mood,
		StressLevel:     c.Stress,
		ConfidenceLevel: c.Confidence,
	}
	if c.Interactive {
		if err := entryForm(&e).Run(); err != nil {
			return err
		}
	}

	saved, err := ctx.Tracker.AddEntry(u.ID, e)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Saved %s entry for %s\n", saved.EntryType, saved.Date)
	return nil
}

func entryForm(e *models.JournalEntry) *huh.Form {
	if e.EntryType == "" {
		e.EntryType = models.EntryDailyReflection
	}
	opts := make([]huh.Option[models.EntryType], len(entryTypes))
	for i, t := range entryTypes {
		opts[i] = huh.NewOption(string(t), t)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.EntryType]().Title("Type").Options(opts...).Value(&e.EntryType),
			huh.NewInput().Title("Title").Value(&e.Title),
			huh.NewText().Title("What's on your mind?").Value(&e.Content),
		),
		huh.NewGroup(
			ratingSelect("Mood", &e.MoodRating),
			ratingSelect("Stress", &e.StressLevel),
			ratingSelect("Confidence", &e.ConfidenceLevel),
		),
	)
}

func ratingSelect(title string, v *int) *huh.Select[int] {
	if *v == 0 {
		*v = 5
	}
	opts := make([]huh.Option[int], 10)
	for i := range opts {
		opts[i] = huh.NewOption(fmt.Sprintf("%d", i+1), i+1)
	}
	return huh.NewSelect[int]().Title(title).Options(opts...).Value(v)
}

type EditCmd struct {
	ID         string  `arg:"" help:"ID of the entry to edit."`
	Title      *string `help:"Entry title."`
	Content    *string `short:"c" help:"Entry text."`
	Type       *string `short:"t" help:"Entry type."`
	Date       *string `short:"d" help:"Day the entry is about."`
	Mood       *int    `short:"m" help:"Mood (1-10)."`
	Stress     *int    `short:"s" help:"Stress level (1-10)."`
	Confidence *int    `help:"Confidence level (1-10)."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	e, err := findEntry(ctx, u.ID, c.ID)
	if err != nil {
		return err
	}

	if c.Title != nil {
		e.Title = *c.Title
	}
	if c.Content != nil {
		e.Content = *c.Content
	}
	if c.Type != nil {
		e.EntryType = models.EntryType(*c.Type)
	}
	if c.Date != nil {
		if e.Date, err = ctx.ResolveDate(*c.Date); err != nil {
			return err
		}
	}
	if c.Mood != nil {
		e.MoodRating = *c.Mood
	}
	if c.Stress != nil {
		e.StressLevel = *c.Stress
	}
	if c.Confidence != nil {
		e.ConfidenceLevel = *c.Confidence
	}

	if _, err := ctx.Tracker.UpdateEntry(u.ID, e); err != nil {
		return err
	}
	fmt.Printf("✓ Updated entry %s\n", e.ID)
	return nil
}

func findEntry(ctx *cli.Context, userID, id string) (models.JournalEntry, error) {
	xs, err := ctx.Tracker.ListEntries(userID, tracker.JournalFilter{})
	if err != nil {
		return models.JournalEntry{}, err
	}
	for _, e := range xs {
		if e.ID == id {
			return e, nil
		}
	}
	return models.JournalEntry{}, fmt.Errorf("journal entry %s: %w", id, tracker.ErrNotFound)
}

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the entry to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	u, err := ctx.ResolveUser()
	if err != nil {
		return err
	}
	if err := ctx.Tracker.DeleteEntry(u.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted entry %s\n", c.ID)
	return nil
}

type ListCmd struct {
	From string `help:"First day to include."`
	To   string `help:"Last day to include."`
	Days int    `help:"Number of days to show when --from is not given." default:"30"`
	Type string `short:"t" help:"Only show entries of this type."`
	Full bool   `short:"f" help:"Print the full text of each entry."`
}

func (c *ListCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return validType(c.Type)
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
	xs, err := ctx.Tracker.ListEntries(u.ID, tracker.JournalFilter{
		Start: start,
		End:   end,
		Type:  models.EntryType(c.Type),
	})
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		fmt.Printf("No journal entries between %s and %s.\n", start, end)
		return nil
	}

	for _, e := range xs {
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("  %s  %-18s %s\n", e.Date, e.EntryType, title)
		fmt.Printf("              mood %d  stress %d  confidence %d  id: %s\n",
			e.MoodRating, e.StressLevel, e.ConfidenceLevel, e.ID)
		if c.Full && e.Content != "" {
			fmt.Printf("\n    %s\n\n", e.Content)
		}
	}
	return nil
}
