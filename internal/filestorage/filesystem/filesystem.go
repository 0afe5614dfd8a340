// Package filesystem implements filestorage.FileStorage on the local disk.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"catconf/internal/filestorage"
)

// Storage implements filestorage.FileStorage using the os package.
type Storage struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// New returns a Storage that creates directories 0755 and files 0644.
func New() *Storage {
	return &Storage{dirPerm: 0755, filePerm: 0644}
}

// ReadOrCreate returns the contents of path, creating an empty file (and its
// parent directories) when it does not exist yet.
func (s *Storage) ReadOrCreate(path string) ([]byte, error) {
	if err := filestorage.ValidatePath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			return nil, fmt.Errorf("reading %s: %w", path, filestorage.ErrIsDirectory)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := s.ensureDir(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, s.filePerm)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return nil, nil
}

// Write truncates path and writes data to it.
func (s *Storage) Write(path string, data []byte) error {
	if err := filestorage.ValidatePath(path); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("writing %s: %w", path, filestorage.ErrIsDirectory)
	}
	if err := s.ensureDir(path); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, s.filePerm)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func (s *Storage) ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), s.dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	return nil
}

// Compile-time check that Storage implements filestorage.FileStorage.
var _ filestorage.FileStorage = (*Storage)(nil)
