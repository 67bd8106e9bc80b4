package binding

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Type identifies the target type a raw input is coerced to.
type Type int

// Supported target types.
const (
	TypeString Type = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeUUID
	TypeDateTime
	TypeDate
	TypeTimeOfDay
	TypeDuration
	TypeObject
)

// String returns the human-readable type name used in error messages.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "integer"
	case TypeFloat:
		return "number"
	case TypeBool:
		return "boolean"
	case TypeUUID:
		return "uuid"
	case TypeDateTime:
		return "datetime"
	case TypeDate:
		return "date"
	case TypeTimeOfDay:
		return "time"
	case TypeDuration:
		return "duration"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// datetimeLayouts are tried in order when coercing a datetime value.
// RFC 3339 first, then a naive local form without a zone offset.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

const dateLayout = "2006-01-02"

// TimeOfDay is a wall-clock time with no date component, e.g. "14:23:55".
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses "15:04:05" or "15:04".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day: %q", s)
}

// String formats the time as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// MarshalJSON serializes the time as a quoted HH:MM:SS string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// Duration wraps time.Duration with JSON serialization as a Go duration
// string ("1h30m0s") instead of nanoseconds.
type Duration time.Duration

// ParseBindDuration parses a Go duration string ("1h30m") or a bare
// number of seconds ("300", "4.5").
func ParseBindDuration(s string) (Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return Duration(d), nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return Duration(time.Duration(secs * float64(time.Second))), nil
	}
	return 0, errors.New("invalid duration: " + strconv.Quote(s))
}

// String returns the Go duration string form.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON serializes the duration as a quoted Go duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}
