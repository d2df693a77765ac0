package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultDBFile = "flatdb.fdb"
)

// CheckExists verifies if a database document exists at the given path.
// Returns true if the document file exists, false otherwise.
func CheckExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check document existence: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("document path is a directory, expected file: %s", path)
	}
	return true, nil
}

// DefaultPath returns the document path used when the caller does not
// choose one. For v0.1-alpha, this is DefaultDBFile in the current
// working directory.
func DefaultPath() string {
	return filepath.Join(".", DefaultDBFile)
}
