// Package binding implements the declarative request-validation layer.
//
// Each route declares a Schema: an ordered list of Field specs describing
// the inputs it accepts (path, query, header, cookie, body), their target
// types, and their constraints. Binding a raw *http.Request against a
// Schema yields either a fully-typed Values set or an aggregated list of
// per-field errors. Validation never stops at the first failing field.
package binding
