// Package fileutil provides common file operations.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// IsReadableFile reports whether path is a regular file that can be opened
// for reading. Symlinks are followed.
func IsReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// ResolveIncludePath resolves path against dirs, in order, and returns the
// first readable file found. Absolute paths are checked as-is and dirs is
// ignored for them. An empty dir entry means the working directory.
func ResolveIncludePath(path string, dirs []string) (string, bool) {
	if path == "" {
		return "", false
	}

	if filepath.IsAbs(path) {
		if IsReadableFile(path) {
			return path, true
		}
		return "", false
	}

	for _, dir := range dirs {
		candidate := path
		if dir != "" && dir != "." {
			candidate = filepath.Join(dir, path)
		}
		if IsReadableFile(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// WriteFileAtomic writes data to dst via a temp file in the same directory
// and a rename, so readers never observe a partial file. Parent directories
// are created as needed.
func WriteFileAtomic(dst string, data []byte, perm os.FileMode) error {
	dstDir := filepath.Dir(dst)
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("create parent directories: %w", err)
	}

	// Create temp file in the same directory for atomic rename
	tmpFile, err := os.CreateTemp(dstDir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Ensure cleanup on any failure
	success := false
	defer func() {
		if !success {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write content: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("rename to destination: %w", err)
	}

	success = true
	return nil
}
