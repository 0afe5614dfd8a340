package codec

import (
	"bytes"
	"fmt"
	"strings"
)

// LineEnding selects the byte sequence written between lines.
type LineEnding int

const (
	LF LineEnding = iota
	CRLF
	CR
)

// Sequence returns the bytes used to terminate a line.
func (le LineEnding) Sequence() string {
	switch le {
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	default:
		return "\n"
	}
}

func (le LineEnding) String() string {
	switch le {
	case CRLF:
		return "crlf"
	case CR:
		return "cr"
	default:
		return "lf"
	}
}

// ParseLineEnding accepts "lf", "crlf" or "cr" in any case.
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lf":
		return LF, nil
	case "crlf":
		return CRLF, nil
	case "cr":
		return CR, nil
	default:
		return LF, fmt.Errorf("invalid line ending %q (valid: lf, crlf, cr)", s)
	}
}

// DetectLineEnding reports the line ending used by data. CRLF wins over CR,
// which wins over LF; data without any line break is reported as LF.
func DetectLineEnding(data []byte) LineEnding {
	switch {
	case bytes.Contains(data, []byte("\r\n")):
		return CRLF
	case bytes.IndexByte(data, '\r') >= 0:
		return CR
	default:
		return LF
	}
}
