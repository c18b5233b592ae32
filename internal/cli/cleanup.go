package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type CleanupCmd struct {
	Days int `help:"Keep completions from the last N days." default:"90"`
}

func (c *CleanupCmd) Run(ctx *Context) error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}

	removed, err := ctx.Ledger.ClearOldCompletions(c.Days)
	if err != nil {
		return err
	}

	if removed == 0 {
		fmt.Printf("No completions older than %d days.\n", c.Days)
		return nil
	}
	fmt.Printf("Removed %d completions older than %d days.\n", removed, c.Days)
	return nil
}

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		fmt.Println("⚠️  WARNING: This deletes all journeys, custom habits, and completions.")
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Ledger.ClearAllData(); err != nil {
		return err
	}

	fmt.Println("All practice data cleared.")
	return nil
}

type ExportCmd struct{}

func (c *ExportCmd) Run(ctx *Context) error {
	state, err := ctx.Ledger.Export()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
