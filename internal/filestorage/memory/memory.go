// Package memory implements filestorage.FileStorage in memory. It is meant
// for tests that need to observe writes or inject I/O failures.
package memory

import (
	"fmt"
	"sync"

	"catconf/internal/filestorage"
)

// Storage holds files in a map keyed by path.
type Storage struct {
	mu    sync.Mutex
	files map[string][]byte

	// ReadErr and WriteErr, when set, are returned by every read or write.
	ReadErr  error
	WriteErr error

	writes int
}

// New returns an empty Storage.
func New() *Storage {
	return &Storage{files: make(map[string][]byte)}
}

// ReadOrCreate returns a copy of the file at path, creating it empty if absent.
func (s *Storage) ReadOrCreate(path string) ([]byte, error) {
	if err := filestorage.ValidatePath(path); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ReadErr != nil {
		return nil, fmt.Errorf("reading %s: %w", path, s.ReadErr)
	}
	data, ok := s.files[path]
	if !ok {
		s.files[path] = nil
		return nil, nil
	}
	return clone(data), nil
}

// Write replaces the file at path.
func (s *Storage) Write(path string, data []byte) error {
	if err := filestorage.ValidatePath(path); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return fmt.Errorf("writing %s: %w", path, s.WriteErr)
	}
	s.files[path] = clone(data)
	s.writes++
	return nil
}

// File returns the contents of path and whether it exists.
func (s *Storage) File(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	return clone(data), ok
}

// SetFile seeds the contents of path.
func (s *Storage) SetFile(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = clone(data)
}

// Writes returns how many successful writes have been made.
func (s *Storage) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func clone(data []byte) []byte {
	if data == nil {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// Compile-time check that Storage implements filestorage.FileStorage.
var _ filestorage.FileStorage = (*Storage)(nil)
