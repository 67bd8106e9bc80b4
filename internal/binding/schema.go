package binding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Shared validator instance for constraint checks.
var validate = validator.New()

// Schema is the ordered collection of field specs for one route,
// partitioned by source. Field names must be unique within a source.
type Schema struct {
	fields []*Field
	strict map[Source]bool
}

// NewSchema builds a schema from the given field specs.
func NewSchema(fields ...*Field) *Schema {
	return &Schema{fields: fields, strict: make(map[Source]bool)}
}

// Strict enables strict mode for one source: any raw field present in
// that source but not declared fails the whole request with an
// unexpected-field error.
func (s *Schema) Strict(src Source) *Schema {
	s.strict[src] = true
	return s
}

// Check verifies the schema invariants. Called at registration time.
func (s *Schema) Check() error {
	seen := make(map[string]bool)
	for _, f := range s.fields {
		key := string(f.source) + ":" + f.name
		if seen[key] {
			return fmt.Errorf("duplicate %s field %q", f.source, f.name)
		}
		seen[key] = true
		if f.typ == TypeObject && f.group == nil {
			return fmt.Errorf("object field %q declares no group schema", f.name)
		}
	}
	return nil
}

// DeprecatedFields returns the names of fields marked deprecated.
func (s *Schema) DeprecatedFields() []string {
	var names []string
	for _, f := range s.fields {
		if f.deprecated {
			names = append(names, f.name)
		}
	}
	return names
}

// Bind validates the raw request against every field spec and returns
// either the fully-typed value set or the aggregated error list. Errors
// from all fields are collected; binding never stops at the first
// failure.
func (s *Schema) Bind(r *http.Request) (Values, Errors) {
	vals := newValues()
	var errs Errors

	var body map[string]any
	bodyOK := true
	if s.usesSource(SourceBody) {
		var err error
		body, err = decodeBody(r)
		if err != nil {
			errs = append(errs, FieldError{
				Source:  SourceBody,
				Field:   "",
				Kind:    KindType,
				Message: "request body is not valid JSON",
			})
			bodyOK = false
		}
	}

	for _, f := range s.fields {
		if f.source == SourceBody && !bodyOK {
			continue
		}
		items, present := resolveRaw(r, f, body)
		val, ok, fieldErrs := bindField(f, items, present)
		errs = append(errs, fieldErrs...)
		if len(fieldErrs) == 0 && ok {
			vals.set(f.name, val)
		}
	}

	if bodyOK {
		errs = append(errs, s.strictExtras(r, body)...)
	}
	return vals, errs
}

// usesSource reports whether any field reads from the given source.
func (s *Schema) usesSource(src Source) bool {
	for _, f := range s.fields {
		if f.source == src {
			return true
		}
	}
	return false
}

// decodeBody parses the request body as a JSON object, preserving
// number precision. An empty body decodes to an empty object so that
// required body fields report missing rather than a malformed body.
func decodeBody(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return m, nil
}

// resolveRaw extracts the raw repetitions of a field from its source,
// in arrival order. A JSON null in the body counts as absent.
func resolveRaw(r *http.Request, f *Field, body map[string]any) ([]any, bool) {
	switch f.source {
	case SourcePath:
		s := chi.URLParam(r, f.wire())
		if s == "" {
			return nil, false
		}
		return []any{s}, true
	case SourceQuery:
		vs, ok := r.URL.Query()[f.wire()]
		if !ok {
			return nil, false
		}
		items := make([]any, len(vs))
		for i, v := range vs {
			items[i] = v
		}
		return items, true
	case SourceHeader:
		vs := r.Header.Values(f.wire())
		if len(vs) == 0 {
			return nil, false
		}
		items := make([]any, len(vs))
		for i, v := range vs {
			items[i] = v
		}
		return items, true
	case SourceCookie:
		var items []any
		for _, c := range r.Cookies() {
			if c.Name == f.wire() {
				items = append(items, c.Value)
			}
		}
		return items, len(items) > 0
	case SourceBody:
		v, ok := body[f.wire()]
		if !ok || v == nil {
			return nil, false
		}
		return []any{v}, true
	default:
		return nil, false
	}
}

// bindField runs the per-field algorithm: absence handling, coercion,
// then constraints in fixed order (bounds, pattern, predicates). The
// returned bool reports whether a value resolved; absent optional
// fields with no default return (nil, false, nil).
func bindField(f *Field, items []any, present bool) (any, bool, Errors) {
	if !present {
		if f.required {
			return nil, false, Errors{{
				Source:  f.source,
				Field:   f.name,
				Kind:    KindMissing,
				Message: "field is required",
			}}
		}
		if f.hasDefault {
			return f.def, true, nil
		}
		return nil, false, nil
	}

	if f.list {
		return bindList(f, items)
	}
	return bindScalar(f, f.name, items[0])
}

// bindList validates every repetition in arrival order, then applies
// list-level length bounds only after all elements pass.
func bindList(f *Field, items []any) (any, bool, Errors) {
	var errs Errors
	typed := make([]any, 0, len(items))
	for i, raw := range items {
		v, _, elemErrs := bindScalar(f, fmt.Sprintf("%s[%d]", f.name, i), raw)
		if len(elemErrs) > 0 {
			errs = append(errs, elemErrs...)
			continue
		}
		typed = append(typed, v)
	}
	if len(errs) > 0 {
		return nil, false, errs
	}

	if len(f.listTags) > 0 {
		if err := validate.Var(typed, strings.Join(f.listTags, ",")); err != nil {
			return nil, false, Errors{constraintFieldError(f, f.name, err, true)}
		}
	}

	if f.typ == TypeString && len(f.enum) == 0 {
		ss := make([]string, len(typed))
		for i, v := range typed {
			ss[i] = v.(string)
		}
		return ss, true, nil
	}
	if len(f.enum) > 0 {
		ss := make([]string, len(typed))
		for i, v := range typed {
			ss[i] = v.(string)
		}
		return ss, true, nil
	}
	return typed, true, nil
}

// bindScalar coerces one raw value and applies the field's constraints
// in the fixed order: enum membership, bounds, pattern, predicates. The
// first failing constraint wins; later ones are not evaluated.
func bindScalar(f *Field, name string, raw any) (any, bool, Errors) {
	// Enum fields compare the raw wire string against the declared
	// members before any other check.
	if len(f.enum) > 0 {
		s, ok := rawAsString(raw)
		if !ok {
			return nil, false, Errors{typeError(f, name, raw)}
		}
		if err := validate.Var(s, "oneof="+strings.Join(f.enum, " ")); err != nil {
			return nil, false, Errors{{
				Source:  f.source,
				Field:   name,
				Kind:    KindEnum,
				Message: "must be one of: " + strings.Join(f.enum, ", "),
				Value:   s,
			}}
		}
		return s, true, nil
	}

	var typed any
	var err error
	if s, ok := raw.(string); ok && f.source != SourceBody {
		typed, err = coerceString(f.typ, s)
	} else {
		typed, err = coerceJSON(f.typ, raw)
	}
	if err != nil {
		return nil, false, Errors{typeError(f, name, raw)}
	}

	if f.typ == TypeObject {
		return bindObject(f, name, typed.(map[string]any))
	}

	if len(f.valueTags) > 0 {
		if err := validate.Var(typed, strings.Join(f.valueTags, ",")); err != nil {
			return nil, false, Errors{constraintFieldError(f, name, err, false)}
		}
	}

	if f.pattern != nil {
		s, ok := typed.(string)
		if !ok || !f.pattern.MatchString(s) {
			return nil, false, Errors{{
				Source:  f.source,
				Field:   name,
				Kind:    KindPattern,
				Message: "must match pattern " + f.pattern.String(),
				Value:   fmt.Sprint(typed),
			}}
		}
	}

	for _, p := range f.predicates {
		if err := p(typed); err != nil {
			return nil, false, Errors{{
				Source:  f.source,
				Field:   name,
				Kind:    KindCustom,
				Message: err.Error(),
			}}
		}
	}

	return typed, true, nil
}

// bindObject recurses into a structured group: each declared member is
// validated independently against the raw object, and strict mode
// reports every undeclared key. No partial success: any member failure
// or unexpected key fails the whole group.
func bindObject(f *Field, name string, raw map[string]any) (any, bool, Errors) {
	var errs Errors
	nested := newValues()
	for _, m := range f.group.fields {
		v, ok := raw[m.wire()]
		present := ok && v != nil
		var items []any
		if present {
			items = []any{v}
		}
		val, resolved, memberErrs := bindField(m, items, present)
		for i := range memberErrs {
			memberErrs[i].Field = name + "." + memberErrs[i].Field
			memberErrs[i].Source = f.source
		}
		errs = append(errs, memberErrs...)
		if len(memberErrs) == 0 && resolved {
			nested.set(m.name, val)
		}
	}
	if f.group.strict[f.source] || f.group.strict[SourceBody] {
		declared := make(map[string]bool)
		for _, m := range f.group.fields {
			declared[m.wire()] = true
		}
		for _, key := range sortedKeys(raw) {
			if !declared[key] {
				errs = append(errs, FieldError{
					Source:  f.source,
					Field:   name + "." + key,
					Kind:    KindUnexpected,
					Message: "unexpected field",
				})
			}
		}
	}
	if len(errs) > 0 {
		return nil, false, errs
	}
	return nested, true, nil
}

// strictExtras reports undeclared raw fields for every source the
// schema marked strict.
func (s *Schema) strictExtras(r *http.Request, body map[string]any) Errors {
	var errs Errors
	for src, on := range s.strict {
		if !on {
			continue
		}
		declared := make(map[string]bool)
		for _, f := range s.fields {
			if f.source == src {
				declared[f.wire()] = true
			}
		}
		for _, name := range presentNames(r, src, body) {
			if !declared[name] {
				errs = append(errs, FieldError{
					Source:  src,
					Field:   name,
					Kind:    KindUnexpected,
					Message: "unexpected field",
				})
			}
		}
	}
	return errs
}

// presentNames enumerates the raw field names present in a source.
func presentNames(r *http.Request, src Source, body map[string]any) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	switch src {
	case SourceQuery:
		for name := range r.URL.Query() {
			add(name)
		}
	case SourceHeader:
		for name := range r.Header {
			add(name)
		}
	case SourceCookie:
		for _, c := range r.Cookies() {
			add(c.Name)
		}
	case SourceBody:
		for name := range body {
			add(name)
		}
	}
	sort.Strings(names)
	return names
}

// typeError builds the coercion-failure error carrying the attempted
// value and the expected type.
func typeError(f *Field, name string, raw any) FieldError {
	return FieldError{
		Source:  f.source,
		Field:   name,
		Kind:    KindType,
		Message: expectedType(f),
		Value:   fmt.Sprint(raw),
	}
}

// constraintFieldError maps a validator/v10 failure onto the error
// taxonomy. The failing tag determines the kind; the tag parameter is
// the violated limit.
func constraintFieldError(f *Field, name string, err error, list bool) FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return FieldError{Source: f.source, Field: name, Kind: KindCustom, Message: err.Error()}
	}
	fe := verrs[0]
	kind, msg := constraintMessage(fe.Tag(), fe.Param(), f.typ, list)
	return FieldError{Source: f.source, Field: name, Kind: kind, Message: msg}
}

// constraintMessage renders the violated constraint: min/max are length
// bounds on strings and lists, gt/gte/lt/lte are numeric bounds.
func constraintMessage(tag, param string, typ Type, list bool) (Kind, string) {
	switch tag {
	case "min":
		if list {
			return KindLength, fmt.Sprintf("must have at least %s items", param)
		}
		return KindLength, fmt.Sprintf("must be at least %s characters", param)
	case "max":
		if list {
			return KindLength, fmt.Sprintf("must have at most %s items", param)
		}
		return KindLength, fmt.Sprintf("must be at most %s characters", param)
	case "gt":
		return KindRange, "must be greater than " + param
	case "gte":
		return KindRange, "must be greater than or equal to " + param
	case "lt":
		return KindRange, "must be less than " + param
	case "lte":
		return KindRange, "must be less than or equal to " + param
	default:
		return KindCustom, "failed " + tag + " validation"
	}
}

// rawAsString narrows a raw value to a string for enum comparison.
func rawAsString(raw any) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

// sortedKeys returns map keys in a stable order for deterministic error
// lists.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
