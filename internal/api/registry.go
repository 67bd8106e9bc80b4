package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/params-api/internal/api/shared"
	"github.com/phrazzld/params-api/internal/binding"
)

// ErrDuplicateRoute is returned when a (method, pattern) pair is
// registered twice. Registration errors are fatal at startup.
var ErrDuplicateRoute = errors.New("duplicate route")

// HandlerFunc is a pure function from a validated input set to a
// response value. Handlers never see partially-valid input: the
// dispatcher invokes them only when every field of the route's schema
// validated, and serializes whatever they return.
type HandlerFunc func(ctx context.Context, in binding.Values) any

// Registration pairs one route with its input schema and handler.
type Registration struct {
	Method  string
	Pattern string
	Schema  *binding.Schema
	Handler HandlerFunc
}

// Registry holds the route table. It is built once at startup and
// read-only afterwards, so concurrent request handling needs no
// locking.
type Registry struct {
	logger *slog.Logger
	routes []Registration
	seen   map[string]bool
}

// NewRegistry creates an empty route registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger: logger,
		seen:   make(map[string]bool),
	}
}

// Register adds a route. It fails on a duplicate (method, pattern)
// pair or a schema that violates its invariants.
func (reg *Registry) Register(method, pattern string, schema *binding.Schema, h HandlerFunc) error {
	key := method + " " + pattern
	if reg.seen[key] {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
	}
	if err := schema.Check(); err != nil {
		return fmt.Errorf("route %s: %w", key, err)
	}
	reg.seen[key] = true
	reg.routes = append(reg.routes, Registration{
		Method:  method,
		Pattern: pattern,
		Schema:  schema,
		Handler: h,
	})
	return nil
}

// Mount installs every registered route on the router, each wrapped by
// the dispatcher. chi's routing trie resolves template matches with
// static segments taking precedence over {param} segments.
func (reg *Registry) Mount(r chi.Router) {
	for _, rt := range reg.routes {
		r.Method(rt.Method, rt.Pattern, reg.dispatch(rt))
	}
}

// dispatch orchestrates bind, validate, invoke, serialize. On any
// validation failure the handler is never invoked and the full
// aggregated error list is returned.
func (reg *Registry) dispatch(rt Registration) http.Handler {
	deprecated := rt.Schema.DeprecatedFields()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, errs := rt.Schema.Bind(r)
		if len(errs) > 0 {
			shared.RespondWithFieldErrors(w, r, errs)
			return
		}

		for _, name := range deprecated {
			if in.Has(name) {
				reg.logger.Debug("deprecated parameter supplied",
					"param", name,
					"method", r.Method,
					"path", r.URL.Path)
			}
		}

		result := rt.Handler(r.Context(), in)
		shared.RespondWithJSON(w, r, http.StatusOK, result)
	})
}
