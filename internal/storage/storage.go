package storage

import (
	"strings"

	"github.com/wirdhq/wird/internal/storage/postgres"
	"github.com/wirdhq/wird/internal/storage/sqlite"
)

// NewSQLiteStore returns the default SQLite-backed provider.
func NewSQLiteStore(path string) *sqlite.Store {
	return sqlite.NewStore(path)
}

// NewPostgresStore returns a Postgres-backed provider.
func NewPostgresStore(connStr string) *postgres.Store {
	return postgres.NewStore(connStr)
}

// ForConfig selects a backend from the config value: a Postgres
// connection string, a .json document path, or (default) a SQLite path.
// Connection strings with embedded credentials are rejected.
func ForConfig(config string) (Provider, error) {
	if postgres.IsConnString(config) {
		if _, err := postgres.ValidateConnString(config); err != nil {
			return nil, err
		}
		return postgres.NewStore(config), nil
	}
	if strings.HasSuffix(config, ".json") {
		return NewJSONStore(config), nil
	}
	return sqlite.NewStore(config), nil
}
