package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/wirdhq/wird/internal/catalog"
	"github.com/wirdhq/wird/internal/cli"
	"github.com/wirdhq/wird/internal/cli/backups"
	"github.com/wirdhq/wird/internal/cli/system"
	"github.com/wirdhq/wird/internal/constants"
	"github.com/wirdhq/wird/internal/errors"
	"github.com/wirdhq/wird/internal/ledger"
	"github.com/wirdhq/wird/internal/logger"
	"github.com/wirdhq/wird/internal/storage"
	"github.com/wirdhq/wird/internal/sync"
	"github.com/wirdhq/wird/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path, .json document path, or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string." type:"string" default:"~/.config/wird/wird.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd   `cmd:"" help:"Initialize wird storage."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Inspect system.DebugCmd  `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`

	Journey cli.JourneyCmd `cmd:"" help:"Browse and subscribe to dua journeys."`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage custom habits."`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's practice checklist."`
	Done    cli.DoneCmd    `cmd:"" help:"Mark a habit as completed today."`
	Undo    cli.UndoCmd    `cmd:"" help:"Remove a completion."`
	Streak  cli.StreakCmd  `cmd:"" help:"Show the current streak."`
	Log     cli.LogCmd     `cmd:"" help:"Show the recent practice log."`
	Cleanup cli.CleanupCmd `cmd:"" help:"Remove old completions."`
	Reset   cli.ResetCmd   `cmd:"" help:"Delete all practice data."`
	Export  cli.ExportCmd  `cmd:"" help:"Dump the ledger state as JSON."`
	Sync    cli.SyncCmd    `cmd:"" help:"Inspect the sync outbox and manage the sync token."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily dua practice companion with journeys, streaks, and XP"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := utils.ExpandPath(CLI.Config)

	store, err := storage.ForConfig(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		if strings.HasPrefix(config, "postgres") {
			fmt.Fprintf(os.Stderr, "       Use environment variables or .pgpass instead of embedding credentials.\n")
		}
		os.Exit(1)
	}
	defer store.Close()

	logDir := filepath.Dir(config)
	if strings.HasPrefix(config, "postgres") {
		logDir = utils.ExpandPath(filepath.Dir(constants.DefaultConfigPath))
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	cat, err := catalog.New()
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:   store,
		Ledger:  ledger.New(store),
		Catalog: cat,
		Outbox:  sync.NewOutbox(store.GetConfigPath()),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
