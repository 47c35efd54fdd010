package system

import (
	"fmt"

	"github.com/julianstephens/recoverwise/internal/cli"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	result, err := ctx.Tracker.Check()
	if err != nil {
		return fmt.Errorf("failed to check data: %w", err)
	}

	fmt.Print(result.FormatReport())
	if result.HasProblems() {
		return fmt.Errorf("validation found %d problem(s)", len(result.Problems))
	}
	fmt.Println()
	return nil
}
