package data

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/models"
)

type DataCmd struct {
	Export ExportCmd `cmd:"" help:"Export every collection as JSON."`
	Import ImportCmd `cmd:"" help:"Import a JSON export, replacing the collections it contains."`
	Reset  ResetCmd  `cmd:"" help:"Delete all stored data."`
}

type ExportCmd struct {
	Output string `short:"o" help:"File to write; stdout when empty." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	d, err := ctx.Tracker.Export()
	if err != nil {
		return fmt.Errorf("failed to export data: %w", err)
	}
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	out = append(out, '\n')

	if c.Output == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(c.Output, out, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("✓ Exported %d users, %d logs, %d activities, %d journal entries and %d crisis events to %s\n",
		len(d.Users), len(d.ConsumptionLogs), len(d.UserActivities), len(d.JournalEntries), len(d.CrisisEvents), c.Output)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Export file to import." type:"existingfile"`
	Yes  bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	var d models.DataExport
	if err := json.Unmarshal(raw, &d); err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	if !c.Yes {
		fmt.Println("⚠️  Collections present in the file replace what is stored now.")
		ok, err := cli.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	result, err := ctx.Tracker.Import(d)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Imported data exported %s (version %s)\n", d.ExportDate.Format("2006-01-02"), d.AppVersion)
	fmt.Println(result.FormatReport())
	return nil
}

type ResetCmd struct {
	Yes bool `short:"y" help:"Do not ask for confirmation."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		fmt.Println("⚠️  This deletes every profile, log, activity, journal entry and crisis event.")
		ok, err := cli.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Tracker.Clear(); err != nil {
		return err
	}
	if _, err := ctx.Tracker.SeedCatalog(); err != nil {
		return err
	}
	fmt.Println("✓ All data cleared. The habit catalog has been restored.")
	return nil
}
