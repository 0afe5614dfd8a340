// Package filestorage defines the byte-level persistence boundary used by the
// settings store. Implementations own directory creation and file lifecycle;
// the store only ever sees whole-file reads and writes.
package filestorage

import (
	"errors"
	"fmt"
)

// FileStorage reads and writes whole files.
type FileStorage interface {
	// ReadOrCreate returns the contents of path. If the file does not exist,
	// its parent directories and an empty file are created and nil is
	// returned.
	ReadOrCreate(path string) ([]byte, error)

	// Write replaces the contents of path with data, creating parent
	// directories as needed. Prior contents are truncated, not appended to.
	Write(path string, data []byte) error
}

var (
	// ErrEmptyPath is returned when an operation is given an empty path.
	ErrEmptyPath = errors.New("empty path")

	// ErrIsDirectory is returned when path names a directory.
	ErrIsDirectory = errors.New("path is a directory")
)

// ValidatePath checks that path is usable as a settings file location.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("settings file: %w", ErrEmptyPath)
	}
	return nil
}
