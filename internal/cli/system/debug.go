package system

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/constants"
)

type DebugCmd struct {
	DBPath *DebugDBPathCmd `cmd:"" help:"Show database path."`
	Keys   *DebugKeysCmd   `cmd:"" help:"List stored collection keys."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump a stored collection as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *cli.Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	for _, k := range keys {
		fmt.Println(k)
	}
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Collection key (users, consumption_logs, habit_replacements, user_activities, journal_entries, crisis_events, app_settings)."`
}

func (cmd *DebugDumpCmd) Validate() error {
	if !slices.Contains(constants.AllKeys, cmd.Key) {
		return fmt.Errorf("unknown collection %q", cmd.Key)
	}
	return nil
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Store.Read(cmd.Key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.Key, err)
	}
	if data == nil {
		return fmt.Errorf("no data stored for %s", cmd.Key)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format %s: %w", cmd.Key, err)
	}

	fmt.Println(out.String())
	return nil
}
