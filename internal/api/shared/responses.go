package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/phrazzld/params-api/internal/binding"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// ValidationErrorResponse enumerates every failing field of a request.
// Validation collects all field errors before responding, so the client
// sees the complete list rather than only the first failure.
type ValidationErrorResponse struct {
	Error   string         `json:"error"`
	Fields  binding.Errors `json:"fields"`
	TraceID string         `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
	}

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, errorResponse)
}

// RespondWithFieldErrors writes the 422 validation-failure response
// carrying the full aggregated per-field error list.
func RespondWithFieldErrors(w http.ResponseWriter, r *http.Request, errs binding.Errors) {
	traceID := GetTraceID(r.Context())

	slog.Debug("request failed validation",
		"error_count", len(errs),
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:   "validation failed",
		Fields:  errs,
		TraceID: traceID,
	})
}
