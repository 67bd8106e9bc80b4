package binding

import (
	"fmt"
	"strings"
)

// Kind classifies a field-level validation failure.
type Kind string

// Possible failure kinds.
const (
	// KindMissing is reported when a required field is absent.
	KindMissing Kind = "missing"

	// KindType is reported when a raw value cannot be coerced to the
	// field's target type.
	KindType Kind = "type"

	// KindLength is reported when a string or list violates its length
	// bounds.
	KindLength Kind = "length"

	// KindRange is reported when a number violates its numeric bounds.
	KindRange Kind = "range"

	// KindPattern is reported when a string does not match the field's
	// regex pattern.
	KindPattern Kind = "pattern"

	// KindEnum is reported when a value is not one of the declared enum
	// members.
	KindEnum Kind = "enum"

	// KindUnexpected is reported for a raw field present in a strict
	// group that is not declared.
	KindUnexpected Kind = "unexpected"

	// KindCustom is reported when a custom predicate rejects a value.
	KindCustom Kind = "custom"
)

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Source  Source `json:"source"`
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("%s.%s: %s", e.Source, e.Field, e.Message)
}

// Errors aggregates every field-level failure found while binding one
// request. Binding collects all failures rather than stopping at the
// first, so a single response can enumerate every invalid field.
type Errors []FieldError

// Error implements the error interface.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}
