// Package store implements the settings store: an in-memory map of settings
// loaded from and saved to a categorized text file.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must synchronize externally, and there is no protection against
// other processes writing the same file (the last Save wins).
package store

import (
	"fmt"
	"slices"
	"strings"

	"catconf/internal/codec"
	"catconf/internal/filestorage"
	"catconf/internal/filestorage/filesystem"
	xlog "catconf/internal/log"
	"catconf/internal/setting"

	"github.com/rs/zerolog"
)

// Component is the log component name used by the store.
const Component = "store"

// Store owns a set of settings keyed by (category, key).
type Store struct {
	path       string
	lineEnding codec.LineEnding
	padding    bool

	files    filestorage.FileStorage
	logger   *zerolog.Logger
	settings map[string]*setting.Setting
}

// Option customizes a Store.
type Option func(*Store)

// WithStorage replaces the default on-disk file storage.
func WithStorage(fs filestorage.FileStorage) Option {
	return func(s *Store) { s.files = fs }
}

// WithLogger replaces the default component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.logger = &l }
}

// New creates a Store for path and loads it. A missing file is created empty.
//
// The returned Store is always usable. If loading fails the store starts
// empty and the error describes the failure.
func New(path string, lineEnding codec.LineEnding, padding bool, opts ...Option) (*Store, error) {
	s := &Store{
		path:       path,
		lineEnding: lineEnding,
		padding:    padding,
		settings:   make(map[string]*setting.Setting),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.files == nil {
		s.files = filesystem.New()
	}
	if s.logger == nil {
		l := xlog.WithComponent(Component)
		s.logger = &l
	}

	return s, s.load()
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// LineEnding returns the line ending used by Save.
func (s *Store) LineEnding() codec.LineEnding { return s.lineEnding }

// Padding reports whether Save writes "key = value".
func (s *Store) Padding() bool { return s.padding }

// Len returns the number of settings held.
func (s *Store) Len() int { return len(s.settings) }

// Add inserts or overwrites the setting at (category, key).
func (s *Store) Add(category, key string, value any) {
	s.AddSetting(setting.New(category, key, value))
}

// AddSetting inserts or overwrites a pre-built setting.
func (s *Store) AddSetting(st *setting.Setting) {
	if st == nil {
		return
	}
	s.settings[settingKey(st.Category(), st.Key())] = st
}

// Get returns a copy of the setting at (category, key). It never creates one.
func (s *Store) Get(category, key string) (setting.Setting, bool) {
	st, ok := s.settings[settingKey(category, key)]
	if !ok {
		return setting.Setting{}, false
	}
	return *st, true
}

// Update calls fn with the stored setting at (category, key) so it can be
// modified in place. It reports whether the setting existed.
func (s *Store) Update(category, key string, fn func(*setting.Setting)) bool {
	st, ok := s.settings[settingKey(category, key)]
	if !ok {
		return false
	}
	fn(st)
	return true
}

// Remove deletes the setting at (category, key) and returns it.
func (s *Store) Remove(category, key string) (setting.Setting, bool) {
	id := settingKey(category, key)
	st, ok := s.settings[id]
	if !ok {
		return setting.Setting{}, false
	}
	delete(s.settings, id)
	return *st, true
}

// Has reports whether a setting exists at (category, key).
func (s *Store) Has(category, key string) bool {
	_, ok := s.settings[settingKey(category, key)]
	return ok
}

// All returns copies of every setting, sorted by category then key.
func (s *Store) All() []setting.Setting {
	out := make([]setting.Setting, 0, len(s.settings))
	for _, st := range s.settings {
		out = append(out, *st)
	}
	slices.SortFunc(out, setting.Compare)
	return out
}

// Category returns copies of the settings in category, sorted by key.
func (s *Store) Category(name string) []setting.Setting {
	var out []setting.Setting
	for _, st := range s.settings {
		if st.Category() == name {
			out = append(out, *st)
		}
	}
	slices.SortFunc(out, setting.Compare)
	return out
}

// Categories returns the sorted, distinct category names.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, st := range s.settings {
		if !seen[st.Category()] {
			seen[st.Category()] = true
			out = append(out, st.Category())
		}
	}
	slices.Sort(out)
	return out
}

// Save writes every setting to the file, replacing its contents. A failed
// save leaves the in-memory settings untouched.
func (s *Store) Save() error {
	for _, st := range s.settings {
		if strings.Contains(st.String(), setting.Separator) {
			s.logger.Warn().
				Str("event", "store.value_not_round_trippable").
				Str("path", s.path).
				Str("category", st.Category()).
				Str("key", st.Key()).
				Msg("value contains the separator and will be skipped on the next load")
		}
	}

	data := codec.Encode(s.list(), codec.Options{
		LineEnding: s.lineEnding,
		Padding:    s.padding,
	})

	if err := s.files.Write(s.path, data); err != nil {
		s.logger.Error().
			Err(err).
			Str("event", "store.save_failed").
			Str("path", s.path).
			Msg("failed to save settings")
		return fmt.Errorf("saving settings: %w", err)
	}

	s.logger.Debug().
		Str("event", "store.saved").
		Str("path", s.path).
		Int("settings", len(s.settings)).
		Int("bytes", len(data)).
		Msg("saved settings")
	return nil
}

// Reload discards every in-memory setting and reads the file again. If the
// file cannot be read the store is left empty.
func (s *Store) Reload() error {
	previous := len(s.settings)
	s.settings = make(map[string]*setting.Setting, previous)
	return s.load()
}

// load reads the file into s.settings, which must be empty.
func (s *Store) load() error {
	data, err := s.files.ReadOrCreate(s.path)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("event", "store.load_failed").
			Str("path", s.path).
			Msg("failed to load settings, starting empty")
		return fmt.Errorf("loading settings: %w", err)
	}

	settings, warnings := codec.Decode(data)
	for _, w := range warnings {
		s.logger.Warn().
			Str("event", "codec.line_skipped").
			Str("path", s.path).
			Int("line", w.Line).
			Str("text", w.Text).
			Str("reason", w.Reason).
			Msg("skipping invalid line")
	}
	for _, st := range settings {
		s.AddSetting(st)
	}

	s.logger.Debug().
		Str("event", "store.loaded").
		Str("path", s.path).
		Int("settings", len(s.settings)).
		Int("skipped", len(warnings)).
		Msg("loaded settings")
	return nil
}

func (s *Store) list() []*setting.Setting {
	out := make([]*setting.Setting, 0, len(s.settings))
	for _, st := range s.settings {
		out = append(out, st)
	}
	return out
}

// settingKey is the map key for (category, key): their plain concatenation.
// Pairs such as ("ab", "c") and ("a", "bc") therefore share a slot.
func settingKey(category, key string) string {
	return category + setting.NormalizeKey(key)
}
