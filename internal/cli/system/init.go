package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wirdhq/wird/internal/cli"
	"github.com/wirdhq/wird/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing database before initialization."`
	Source string `help:"Source database path or connection string to import data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized wird storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Importing data from: %s\n", c.Source)
		if err := c.importData(ctx, c.Source); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Println("Import completed successfully!")
	}

	return nil
}

// importData copies the full ledger state from another store, which may
// use a different backend than the destination.
func (c *InitCmd) importData(ctx *cli.Context, sourcePath string) error {
	sourceStore, err := storage.ForConfig(sourcePath)
	if err != nil {
		return err
	}
	defer sourceStore.Close()

	state, err := sourceStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}

	fmt.Printf("  Importing %d journeys, %d custom habits, %d completions...\n",
		len(state.ActiveJourneyIDs), len(state.CustomHabits), len(state.HabitCompletions))

	if err := ctx.Store.Save(state); err != nil {
		return fmt.Errorf("failed to save state to destination: %w", err)
	}
	return nil
}
