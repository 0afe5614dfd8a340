// Package codec converts settings to and from the categorized text format:
//
//	[category]
//	key=value
//	other = value
//
//	[next]
//	key=value
//
// Encoding is deterministic: categories and keys are sorted and every
// category is followed by a blank line. Decoding is tolerant and line
// oriented; malformed lines are reported and skipped, never fatal.
package codec

import (
	"fmt"
	"slices"
	"strings"

	"catconf/internal/setting"
)

// Format markers.
const (
	CategoryStart = "["
	CategoryEnd   = "]"
	Separator     = setting.Separator
)

// Options controls how settings are written.
type Options struct {
	LineEnding LineEnding
	// Padding writes "key = value" instead of "key=value".
	Padding bool
}

// Encode renders settings in category then key order.
func Encode(settings []*setting.Setting, opts Options) []byte {
	sorted := make([]setting.Setting, 0, len(settings))
	for _, s := range settings {
		if s != nil {
			sorted = append(sorted, *s)
		}
	}
	slices.SortFunc(sorted, setting.Compare)

	nl := opts.LineEnding.Sequence()
	sep := Separator
	if opts.Padding {
		sep = " " + Separator + " "
	}

	var b strings.Builder
	for i, s := range sorted {
		if i == 0 || sorted[i-1].Category() != s.Category() {
			b.WriteString(CategoryStart + s.Category() + CategoryEnd + nl)
		}
		b.WriteString(s.Key() + sep + s.String() + nl)
		if i == len(sorted)-1 || sorted[i+1].Category() != s.Category() {
			b.WriteString(nl)
		}
	}
	return []byte(b.String())
}

// LineError describes a line Decode skipped.
type LineError struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Decode parses data into settings. Lines are split on the line ending
// detected in data, which is assumed uniform. A later key in the same
// category overwrites an earlier one. Skipped lines are returned as
// warnings; blank lines are ignored silently.
func Decode(data []byte) ([]*setting.Setting, []*LineError) {
	if len(data) == 0 {
		return nil, nil
	}

	lines := strings.Split(string(data), DetectLineEnding(data).Sequence())

	var (
		settings []*setting.Setting
		warnings []*LineError
		index    = make(map[[2]string]int)
		category string
	)
	for i, line := range lines {
		if line == "" {
			continue
		}

		if isCategoryHeader(line) {
			category = line[len(CategoryStart) : len(line)-len(CategoryEnd)]
			continue
		}

		if n := strings.Count(line, Separator); n != 1 {
			warnings = append(warnings, &LineError{
				Line:   i + 1,
				Text:   line,
				Reason: fmt.Sprintf("expected one %q, found %d", Separator, n),
			})
			continue
		}

		key, value, _ := strings.Cut(line, Separator)
		s := setting.New(category, strings.TrimSpace(key), strings.TrimSpace(value))

		id := [2]string{category, s.Key()}
		if at, ok := index[id]; ok {
			settings[at] = s
			continue
		}
		index[id] = len(settings)
		settings = append(settings, s)
	}
	return settings, warnings
}

func isCategoryHeader(line string) bool {
	return len(line) >= len(CategoryStart)+len(CategoryEnd) &&
		strings.HasPrefix(line, CategoryStart) &&
		strings.HasSuffix(line, CategoryEnd)
}
