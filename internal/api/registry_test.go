package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/params-api/internal/binding"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(ctx context.Context, in binding.Values) any {
	return map[string]string{"status": "ok"}
}

func TestRegisterRejectsDuplicateRoute(t *testing.T) {
	reg := NewRegistry(testLogger())

	schema := binding.NewSchema()
	require.NoError(t, reg.Register("GET", "/things", schema, okHandler))

	err := reg.Register("GET", "/things", binding.NewSchema(), okHandler)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRoute)
}

func TestRegisterAllowsSamePatternDifferentMethod(t *testing.T) {
	reg := NewRegistry(testLogger())

	require.NoError(t, reg.Register("GET", "/things", binding.NewSchema(), okHandler))
	require.NoError(t, reg.Register("POST", "/things", binding.NewSchema(), okHandler))
}

func TestRegisterRejectsInvalidSchema(t *testing.T) {
	reg := NewRegistry(testLogger())

	schema := binding.NewSchema(
		binding.Query("q", binding.TypeString),
		binding.Query("q", binding.TypeInt),
	)
	err := reg.Register("GET", "/things", schema, okHandler)
	assert.Error(t, err)
}

func TestDispatchSkipsHandlerOnValidationFailure(t *testing.T) {
	reg := NewRegistry(testLogger())

	invoked := false
	schema := binding.NewSchema(
		binding.Query("count", binding.TypeInt).Required(),
	)
	require.NoError(t, reg.Register("GET", "/count", schema, func(ctx context.Context, in binding.Values) any {
		invoked = true
		return map[string]string{"status": "ok"}
	}))

	r := chi.NewRouter()
	reg.Mount(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/count", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, invoked, "handler must not run when validation fails")
}

func TestDispatchInvokesHandlerWithBoundValues(t *testing.T) {
	reg := NewRegistry(testLogger())

	var got int
	schema := binding.NewSchema(
		binding.Query("count", binding.TypeInt).Required(),
	)
	require.NoError(t, reg.Register("GET", "/count", schema, func(ctx context.Context, in binding.Values) any {
		got = in.Int("count")
		return map[string]int{"count": got}
	}))

	r := chi.NewRouter()
	reg.Mount(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/count?count=42", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, got)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRegisterRoutesBuildsFullTable(t *testing.T) {
	reg := NewRegistry(testLogger())
	require.NoError(t, RegisterRoutes(reg))
	assert.GreaterOrEqual(t, len(reg.routes), 24)
}
