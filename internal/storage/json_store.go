package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wirdhq/wird/internal/logger"
	"github.com/wirdhq/wird/internal/models"
)

// JSONStore persists the ledger as a single JSON document on disk.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.EmptyState())
}

func (s *JSONStore) Load() (models.LedgerState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First use: the ledger starts empty.
			return models.EmptyState(), nil
		}
		return models.LedgerState{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var state models.LedgerState
	if err := json.Unmarshal(data, &state); err != nil {
		// Habit/streak data is not safety-critical; a corrupted blob
		// falls back to an empty ledger rather than blocking the user.
		logger.Warn("Discarding corrupted ledger state", "path", s.path, "error", err)
		return models.EmptyState(), nil
	}

	state.Normalize()
	return state, nil
}

func (s *JSONStore) Save(state models.LedgerState) error {
	state.Normalize()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
