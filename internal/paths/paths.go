// Package paths resolves the on-disk locations used by Block Breaker.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDir is the directory under the user's home holding all game data.
const AppDir = ".blockbreaker"

// Expand replaces a leading ~ with the user's home directory.
func Expand(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("paths: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Default returns "~/.blockbreaker/<name>" in unexpanded form,
// suitable as a flag default.
func Default(name string) string {
	return "~/" + AppDir + "/" + name
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("paths: cannot create directory %s: %w", dir, err)
	}
	return nil
}
