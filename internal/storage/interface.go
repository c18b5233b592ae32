package storage

import "github.com/wirdhq/wird/internal/models"

// Provider persists the ledger document. Implementations read the state
// in full and write it in full; there is no partial-update protocol.
// A Provider is not safe for concurrent use without external
// synchronization; the ledger serializes all access to it.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Load returns the full persisted state. A missing store yields an
	// empty state (first use). A corrupted store also yields an empty
	// state after logging the condition; only genuine I/O failures are
	// returned as errors.
	Load() (models.LedgerState, error)

	// Save replaces the full persisted state.
	Save(models.LedgerState) error

	// Utils
	GetConfigPath() string
}
