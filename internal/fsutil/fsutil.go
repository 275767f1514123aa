// Package fsutil holds the small conditional filesystem helpers shared by
// the loaders and the job processor.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates path and any missing parents. Existing directories are left alone.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", ErrFileSystem, path, err)
	}
	return nil
}

// RemoveIfExists deletes the file at path. A missing file is not an error.
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove %s: %w", ErrFileSystem, path, err)
	}
	return nil
}
