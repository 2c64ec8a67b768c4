package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gabapcia/aethersight/internal/blockcache"
	"github.com/gabapcia/aethersight/internal/pkg/logger"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type errorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(r.Context(), "failed to encode response", "error", err)
	}
}

// statusFor maps a failure kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, blockcache.ErrUpstreamRejected),
		errors.Is(err, blockcache.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, blockcache.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError replies with the error envelope. Unclassified errors are
// reported as unexpected.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	err = blockcache.Unexpected(err)
	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", "error", err)
	}

	writeJSON(w, r, status, errorResponse{Status: statusError, Detail: err.Error()})
}
