package postgres

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrEmbeddedCredentials is returned when a connection string carries a
// password inline. Credentials belong in the OS keyring, environment, or
// .pgpass, never on the command line.
var ErrEmbeddedCredentials = errors.New("connection string contains embedded credentials")

// IsConnString reports whether the config value is a Postgres connection string.
func IsConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// ValidateConnString parses the connection string and rejects embedded
// passwords.
func ValidateConnString(connStr string) (bool, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return false, fmt.Errorf("invalid connection string: %w", err)
	}

	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			return false, ErrEmbeddedCredentials
		}
	}

	return true, nil
}
