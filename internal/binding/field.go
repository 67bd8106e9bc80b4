package binding

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// Source identifies where a field's raw value is read from.
type Source string

// Possible field sources.
const (
	SourcePath   Source = "path"
	SourceQuery  Source = "query"
	SourceHeader Source = "header"
	SourceCookie Source = "cookie"
	SourceBody   Source = "body"
)

// Predicate is a custom validation function run against the coerced
// value, after declarative bounds and pattern checks. Returning a
// non-nil error rejects the value; the error message is surfaced to the
// client.
type Predicate func(v any) error

// Field is the declarative spec for one named input: its source, target
// type, required/optional status with optional default, wire alias, and
// constraint set. Build fields with the Path/Query/Header/Cookie/Body
// constructors and chain constraint methods:
//
//	binding.Query("size", binding.TypeFloat).Required().Gt(0).Lt(10.5)
type Field struct {
	name       string
	source     Source
	typ        Type
	required   bool
	def        any
	hasDefault bool
	alias      string
	list       bool
	deprecated bool

	// valueTags holds validator/v10 tag fragments applied to the coerced
	// scalar (or each list element); listTags applies to the collected
	// list itself. Bounds are kept as tags so the constraint engine is
	// go-playground/validator rather than hand-rolled comparisons.
	valueTags  []string
	listTags   []string
	pattern    *regexp.Regexp
	enum       []string
	predicates []Predicate
	group      *Schema
}

func newField(name string, source Source, typ Type) *Field {
	return &Field{name: name, source: source, typ: typ}
}

// Path declares a path parameter. Path parameters are always required.
func Path(name string, typ Type) *Field {
	f := newField(name, SourcePath, typ)
	f.required = true
	return f
}

// Query declares a query parameter. Optional unless Required is called.
func Query(name string, typ Type) *Field {
	return newField(name, SourceQuery, typ)
}

// Header declares a header parameter. The wire name defaults to the
// field name with underscores replaced by hyphens, canonicalized
// ("user_agent" reads the "User-Agent" header). Use Alias to override.
func Header(name string, typ Type) *Field {
	return newField(name, SourceHeader, typ)
}

// Cookie declares a cookie parameter.
func Cookie(name string, typ Type) *Field {
	return newField(name, SourceCookie, typ)
}

// Body declares a field read from the top level of a JSON request body.
func Body(name string, typ Type) *Field {
	return newField(name, SourceBody, typ)
}

// Required marks the field as required: absence is a validation error.
func (f *Field) Required() *Field {
	f.required = true
	return f
}

// Default declares the value the field resolves to when absent.
// Defaults are trusted and never re-validated against the field's own
// constraints.
func (f *Field) Default(v any) *Field {
	f.def = v
	f.hasDefault = true
	return f
}

// Alias sets an alternate wire name, leaving the logical field name
// unchanged ("keyword" bound from the "q" query parameter).
func (f *Field) Alias(wire string) *Field {
	f.alias = wire
	return f
}

// List marks the field as repeatable: every raw repetition is collected
// in arrival order and validated element by element.
func (f *Field) List() *Field {
	f.list = true
	return f
}

// Deprecated marks the field as deprecated. Informational only: the
// dispatcher logs supplied deprecated parameters at debug level.
func (f *Field) Deprecated() *Field {
	f.deprecated = true
	return f
}

// MinLen requires string values to have at least n characters.
func (f *Field) MinLen(n int) *Field {
	f.valueTags = append(f.valueTags, "min="+strconv.Itoa(n))
	return f
}

// MaxLen requires string values to have at most n characters.
func (f *Field) MaxLen(n int) *Field {
	f.valueTags = append(f.valueTags, "max="+strconv.Itoa(n))
	return f
}

// Gt requires numeric values to be strictly greater than limit.
func (f *Field) Gt(limit float64) *Field {
	f.valueTags = append(f.valueTags, "gt="+formatLimit(limit))
	return f
}

// Gte requires numeric values to be greater than or equal to limit.
func (f *Field) Gte(limit float64) *Field {
	f.valueTags = append(f.valueTags, "gte="+formatLimit(limit))
	return f
}

// Lt requires numeric values to be strictly less than limit.
func (f *Field) Lt(limit float64) *Field {
	f.valueTags = append(f.valueTags, "lt="+formatLimit(limit))
	return f
}

// Lte requires numeric values to be less than or equal to limit.
func (f *Field) Lte(limit float64) *Field {
	f.valueTags = append(f.valueTags, "lte="+formatLimit(limit))
	return f
}

// Pattern requires string values to match the given regular expression.
// The expression is compiled at declaration time; an invalid expression
// panics, which surfaces at startup when routes are built.
func (f *Field) Pattern(expr string) *Field {
	f.pattern = regexp.MustCompile(expr)
	return f
}

// Enum restricts the raw value to one of the given wire strings.
func (f *Field) Enum(members ...string) *Field {
	f.enum = members
	return f
}

// Check attaches a custom predicate, run after coercion, bounds, and
// pattern checks.
func (f *Field) Check(p Predicate) *Field {
	f.predicates = append(f.predicates, p)
	return f
}

// MinItems requires list fields to contain at least n elements.
func (f *Field) MinItems(n int) *Field {
	f.listTags = append(f.listTags, "min="+strconv.Itoa(n))
	return f
}

// MaxItems requires list fields to contain at most n elements.
func (f *Field) MaxItems(n int) *Field {
	f.listTags = append(f.listTags, "max="+strconv.Itoa(n))
	return f
}

// Group attaches a nested schema to a TypeObject field. The nested
// fields are validated by recursion into the same algorithm; strictness
// declared on the nested schema applies to the nested object's keys.
func (f *Field) Group(sub *Schema) *Field {
	f.group = sub
	return f
}

// wire returns the name the field is resolved under in its source.
func (f *Field) wire() string {
	if f.alias != "" {
		return f.alias
	}
	if f.source == SourceHeader {
		return http.CanonicalHeaderKey(strings.ReplaceAll(f.name, "_", "-"))
	}
	return f.name
}

// formatLimit renders a numeric limit without a trailing ".0" so tags
// read "gt=0" and "lt=10.5".
func formatLimit(limit float64) string {
	return strconv.FormatFloat(limit, 'f', -1, 64)
}

// expectedType builds the message used for coercion failures.
func expectedType(f *Field) string {
	return fmt.Sprintf("must be a valid %s", f.typ)
}
