package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a leading "~/" to the user's home directory.
// Connection strings and absolute paths pass through unchanged.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
