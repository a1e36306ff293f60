// Package filex holds filesystem helpers shared by the command-line tools.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyDir is returned by EnsureDataDir for an empty path.
var ErrEmptyDir = errors.New("data directory is empty")

// EnsureDataDir creates dir with owner-only permissions if it is missing and
// returns its absolute path. An absolute dir is used as given; a relative one
// is resolved against the working directory.
func EnsureDataDir(dir string) (string, error) {
	if dir == "" {
		return "", ErrEmptyDir
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}
