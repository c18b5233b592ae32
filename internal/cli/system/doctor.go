package system

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/wirdhq/wird/internal/backup"
	"github.com/wirdhq/wird/internal/cli"
	"github.com/wirdhq/wird/internal/constants"
	"github.com/wirdhq/wird/internal/migration"
	"github.com/wirdhq/wird/internal/storage/sqlite"
	"github.com/wirdhq/wird/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}

		if err := checkDateFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}

		if err := checkDuplicateCompletions(ctx); err != nil {
			fmt.Printf("❌ Completion uniqueness: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Completion uniqueness: OK\n")
		}

		if err := checkCatalogReferences(ctx); err != nil {
			fmt.Printf("⚠ Catalog references: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Catalog references: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Completion uniqueness: SKIPPED (database not reachable)\n")
		fmt.Printf("⊘ Catalog references: SKIPPED (database not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	if err := checkSingleWriter(); err != nil {
		fmt.Printf("⚠ Single writer: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single writer: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if _, err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db, err := sqliteStore.GetDB()
		if err != nil {
			return err
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	db, ok := sqliteDB(ctx)
	if !ok {
		return nil
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}
	runner := migration.NewRunner(db, subFS)

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}
	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", currentVersion, latestVersion)
	}
	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	db, ok := sqliteDB(ctx)
	if !ok {
		return nil
	}

	var invalidCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM habit_completions
		WHERE day NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check completion dates: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d completions with invalid date format", invalidCount)
	}
	return nil
}

func checkDuplicateCompletions(ctx *cli.Context) error {
	db, ok := sqliteDB(ctx)
	if !ok {
		return nil
	}

	var duplicateCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM (
			SELECT habit_id, day, COUNT(*) as cnt
			FROM habit_completions
			GROUP BY habit_id, day
			HAVING cnt > 1
		)
	`).Scan(&duplicateCount)
	if err != nil {
		return fmt.Errorf("failed to check duplicate completions: %w", err)
	}
	if duplicateCount > 0 {
		return fmt.Errorf("found %d habit+day combinations with duplicate completions", duplicateCount)
	}
	return nil
}

func checkCatalogReferences(ctx *cli.Context) error {
	state, err := ctx.Ledger.Export()
	if err != nil {
		return err
	}

	for _, id := range state.ActiveJourneyIDs {
		if _, ok := ctx.Catalog.Journey(id); !ok {
			return fmt.Errorf("active journey %d is missing from the catalog", id)
		}
	}
	for _, h := range state.CustomHabits {
		if _, ok := ctx.Catalog.Dua(h.DuaID); !ok {
			return fmt.Errorf("custom habit %s references unknown dua %d", h.ID, h.DuaID)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'wird backup create'")
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// checkSingleWriter scans the process table for other running instances.
// The ledger serializes writes within one process only.
func checkSingleWriter() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	count := 0
	for _, p := range processes {
		name := strings.TrimSuffix(p.Executable(), filepath.Ext(p.Executable()))
		if name == constants.AppName && p.Pid() != self {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("found %d other running %s process(es); concurrent writes can clobber each other", count, constants.AppName)
	}
	return nil
}

func sqliteDB(ctx *cli.Context) (*sql.DB, bool) {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil, false
	}
	db, err := sqliteStore.GetDB()
	if err != nil {
		return nil, false
	}
	return db, true
}
