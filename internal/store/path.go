package store

import (
	"os"
	"path/filepath"
)

// DefaultFileName is the database file used under the home directory when
// no explicit path is given.
const DefaultFileName = "counter.db"

// DefaultPath returns <home-directory>/counter.db.
// Fails with a CONFIG_ERROR when no home directory can be determined.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", NewConfigError("cannot determine home directory for default database path", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// ResolvePath maps an empty path to the default database location.
// Explicit paths (including MemoryPath) pass through unchanged.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return DefaultPath()
	}
	return path, nil
}
