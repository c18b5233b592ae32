package cli

import (
	"fmt"

	"github.com/wirdhq/wird/internal/backup"
	"github.com/wirdhq/wird/internal/catalog"
	"github.com/wirdhq/wird/internal/ledger"
	"github.com/wirdhq/wird/internal/logger"
	"github.com/wirdhq/wird/internal/models"
	"github.com/wirdhq/wird/internal/storage"
	"github.com/wirdhq/wird/internal/storage/sqlite"
	"github.com/wirdhq/wird/internal/sync"
)

// Context carries the wired application components into every command.
type Context struct {
	Store   storage.Provider
	Ledger  *ledger.Ledger
	Catalog *catalog.Catalog
	Outbox  *sync.Outbox
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors. Only file-backed stores (SQLite, JSON) are backed up.
func (c *Context) PerformAutomaticBackup() {
	switch c.Store.(type) {
	case *sqlite.Store, *storage.JSONStore:
	default:
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// QueueCompletionEvent records a completion in the sync outbox. Outbox
// failures are logged but never interrupt the user's workflow.
func (c *Context) QueueCompletionEvent(completion models.HabitCompletion) {
	if err := c.Outbox.RecordCompletion(completion); err != nil {
		logger.Warn("Failed to queue completion event", "habit", completion.HabitID, "error", err)
	}
}

// QueueReversalEvent records an undo in the sync outbox.
func (c *Context) QueueReversalEvent(habitID, date string) {
	if err := c.Outbox.RecordReversal(habitID, date); err != nil {
		logger.Warn("Failed to queue reversal event", "habit", habitID, "error", err)
	}
}

// FindHabit resolves a habit id against the active journeys and custom
// habits of the current state.
func (c *Context) FindHabit(habitID string) (catalog.HabitItem, error) {
	state, err := c.Ledger.Export()
	if err != nil {
		return catalog.HabitItem{}, err
	}
	for _, item := range c.Catalog.HabitsForToday(state) {
		if item.HabitID == habitID {
			return item, nil
		}
	}
	return catalog.HabitItem{}, fmt.Errorf("habit %q not found in today's list", habitID)
}
