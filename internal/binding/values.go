package binding

import (
	"time"

	"github.com/google/uuid"
)

// Values is the fully-typed, fully-validated input set for one request.
// It is constructed per request and discarded after the handler returns.
// Optional fields that were absent with no declared default have no
// entry; Has distinguishes absence from a zero value.
type Values struct {
	m map[string]any
}

func newValues() Values {
	return Values{m: make(map[string]any)}
}

func (v Values) set(name string, val any) {
	v.m[name] = val
}

// Has reports whether the named field resolved to a value.
func (v Values) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

// String returns the named string value, or "" when absent.
func (v Values) String(name string) string {
	s, _ := v.m[name].(string)
	return s
}

// Int returns the named integer value, or 0 when absent.
func (v Values) Int(name string) int {
	n, _ := v.m[name].(int)
	return n
}

// Float returns the named float value, or 0 when absent.
func (v Values) Float(name string) float64 {
	f, _ := v.m[name].(float64)
	return f
}

// Bool returns the named boolean value, or false when absent.
func (v Values) Bool(name string) bool {
	b, _ := v.m[name].(bool)
	return b
}

// UUID returns the named UUID value, or uuid.Nil when absent.
func (v Values) UUID(name string) uuid.UUID {
	id, _ := v.m[name].(uuid.UUID)
	return id
}

// Time returns the named datetime or date value, or the zero time.
func (v Values) Time(name string) time.Time {
	t, _ := v.m[name].(time.Time)
	return t
}

// TimeOfDay returns the named time-of-day value.
func (v Values) TimeOfDay(name string) TimeOfDay {
	t, _ := v.m[name].(TimeOfDay)
	return t
}

// Duration returns the named duration value.
func (v Values) Duration(name string) Duration {
	d, _ := v.m[name].(Duration)
	return d
}

// Strings returns the named list-of-strings value, or nil when absent.
func (v Values) Strings(name string) []string {
	ss, _ := v.m[name].([]string)
	return ss
}

// Object returns the nested Values of a structured-group field.
func (v Values) Object(name string) Values {
	o, _ := v.m[name].(Values)
	return o
}
