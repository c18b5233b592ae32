package system

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/wirdhq/wird/internal/cli"
)

type DebugCmd struct {
	DBPath      *DebugDBPathCmd      `cmd:"" help:"Show database path."`
	DumpState   *DebugDumpStateCmd   `cmd:"" help:"Dump the full ledger state as JSON."`
	Fingerprint *DebugFingerprintCmd `cmd:"" help:"Print a hash of the ledger state for change detection."`
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

type DebugDumpStateCmd struct{}

func (cmd *DebugDumpStateCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Ledger.Export()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugFingerprintCmd struct{}

func (cmd *DebugFingerprintCmd) Run(ctx *cli.Context) error {
	state, err := ctx.Ledger.Export()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	hash, err := hashstructure.Hash(state, hashstructure.FormatV2, nil)
	if err != nil {
		return fmt.Errorf("failed to hash state: %w", err)
	}

	output := map[string]interface{}{
		"fingerprint": fmt.Sprintf("%016x", hash),
		"journeys":    len(state.ActiveJourneyIDs),
		"habits":      len(state.CustomHabits),
		"completions": len(state.HabitCompletions),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
