package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/params-api/internal/binding"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	RespondWithJSON(rec, req, http.StatusOK, map[string]string{"message": "hi"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"hi"}`, rec.Body.String())
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/missing", nil)
	req = req.WithContext(SetTraceID(context.Background()))

	RespondWithError(rec, req, http.StatusNotFound, "route not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "route not found", resp.Error)
	assert.NotEmpty(t, resp.TraceID)
}

func TestRespondWithFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/things", nil)

	errs := binding.Errors{
		{Source: binding.SourceQuery, Field: "limit", Kind: binding.KindRange, Message: "must be greater than 0"},
		{Source: binding.SourceQuery, Field: "order_by", Kind: binding.KindEnum, Message: "must be one of: name, created_at"},
	}
	RespondWithFieldErrors(rec, req, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error  string `json:"error"`
		Fields []struct {
			Source string `json:"source"`
			Field  string `json:"field"`
			Kind   string `json:"kind"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "limit", resp.Fields[0].Field)
	assert.Equal(t, "range", resp.Fields[0].Kind)
	assert.Equal(t, "order_by", resp.Fields[1].Field)
	assert.Equal(t, "enum", resp.Fields[1].Kind)
}
