// Package filex provides small filesystem helpers shared by the store and
// the report exporter.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// WriteFileAtomic writes data to path by writing a temporary file in the
// same directory and renaming it over the target. On failure the previous
// file content stays intact.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}
