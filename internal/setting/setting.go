// Package setting defines a single categorized key/value setting whose value
// is always held as text. Typed reads and writes convert at the boundary.
package setting

import (
	"cmp"
	"encoding"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Separator is the key/value separator. It is never allowed inside a key.
const Separator = "="

// Setting is one category+key+value triple.
type Setting struct {
	category string
	key      string
	value    string
}

// New creates a Setting. The key is normalized with NormalizeKey and value is
// serialized to its trimmed textual form.
func New(category, key string, value any) *Setting {
	return &Setting{
		category: category,
		key:      NormalizeKey(key),
		value:    format(value),
	}
}

// NormalizeKey removes every Separator from key and trims surrounding
// whitespace, matching what the codec reads back.
func NormalizeKey(key string) string {
	return strings.TrimSpace(strings.ReplaceAll(key, Separator, ""))
}

// Category returns the setting's category.
func (s Setting) Category() string { return s.category }

// Key returns the setting's key.
func (s Setting) Key() string { return s.key }

// String returns the raw textual value.
func (s Setting) String() string { return s.value }

// SetValue overwrites the stored text with the serialized value.
func (s *Setting) SetValue(value any) {
	s.value = format(value)
}

// Int returns the value as an int, or def if it does not parse.
func (s Setting) Int(def int) int { return Value(s, def) }

// Int64 returns the value as an int64, or def if it does not parse.
func (s Setting) Int64(def int64) int64 { return Value(s, def) }

// Uint64 returns the value as a uint64, or def if it does not parse.
func (s Setting) Uint64(def uint64) uint64 { return Value(s, def) }

// Float64 returns the value as a float64, or def if it does not parse.
func (s Setting) Float64(def float64) float64 { return Value(s, def) }

// Bool returns the value as a bool, or def if it does not parse. Any form
// strconv.ParseBool accepts is recognized.
func (s Setting) Bool(def bool) bool { return Value(s, def) }

// Duration returns the value as a time.Duration, or def if it does not parse.
func (s Setting) Duration(def time.Duration) time.Duration { return Value(s, def) }

// Compare orders settings by category, then key, then value.
func Compare(a, b Setting) int {
	if c := cmp.Compare(a.category, b.category); c != 0 {
		return c
	}
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	return cmp.Compare(a.value, b.value)
}

// format turns value into trimmed text. Text marshalers win over cast so
// types like time.Time round-trip through their UnmarshalText.
func format(value any) string {
	if m, ok := value.(encoding.TextMarshaler); ok {
		if b, err := m.MarshalText(); err == nil {
			return strings.TrimSpace(string(b))
		}
	}
	str, err := cast.ToStringE(value)
	if err != nil {
		str = fmt.Sprint(value)
	}
	return strings.TrimSpace(str)
}
