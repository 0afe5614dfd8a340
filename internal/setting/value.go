package setting

import (
	"encoding"
	"errors"
	"strconv"
	"time"

	"github.com/spf13/cast"
)

// Value parses the setting's text as T. It returns def when the text cannot
// be represented as T; it never panics.
//
// Supported kinds are string, bool, every sized int and uint, float32,
// float64, time.Duration, and any T whose pointer implements
// encoding.TextUnmarshaler. Integers are plain base 10: "010" is 10 and
// "0x10" or "1_000" yield def. Booleans follow strconv.ParseBool, so "1",
// "t" and "TRUE" are true as well as "true".
func Value[T any](s Setting, def T) T {
	var (
		out any
		err error
	)
	switch any(def).(type) {
	case string:
		out = s.value
	case bool:
		out, err = cast.ToBoolE(s.value)
	case int:
		out, err = signed[int](s.value)
	case int8:
		out, err = signed[int8](s.value)
	case int16:
		out, err = signed[int16](s.value)
	case int32:
		out, err = signed[int32](s.value)
	case int64:
		out, err = signed[int64](s.value)
	case uint:
		out, err = unsigned[uint](s.value)
	case uint8:
		out, err = unsigned[uint8](s.value)
	case uint16:
		out, err = unsigned[uint16](s.value)
	case uint32:
		out, err = unsigned[uint32](s.value)
	case uint64:
		out, err = unsigned[uint64](s.value)
	case float32:
		out, err = cast.ToFloat32E(s.value)
	case float64:
		out, err = cast.ToFloat64E(s.value)
	case time.Duration:
		out, err = cast.ToDurationE(s.value)
	default:
		var v T
		u, ok := any(&v).(encoding.TextUnmarshaler)
		if !ok {
			return def
		}
		if err := u.UnmarshalText([]byte(s.value)); err != nil {
			return def
		}
		return v
	}
	if err != nil {
		return def
	}
	v, ok := out.(T)
	if !ok {
		return def
	}
	return v
}

var errOverflow = errors.New("value overflows target type")

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// signed parses text as a base 10 T, rejecting values that overflow it.
func signed[T signedInt](text string) (T, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, err
	}
	if int64(T(n)) != n {
		return 0, errOverflow
	}
	return T(n), nil
}

// unsigned parses text as a base 10 T, rejecting negative and overflowing
// values.
func unsigned[T unsignedInt](text string) (T, error) {
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, err
	}
	if uint64(T(n)) != n {
		return 0, errOverflow
	}
	return T(n), nil
}
