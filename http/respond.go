package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"gpa-calculator/service"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		writeError(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}
	return true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		loggerFrom(r).Debug("invalid request body", zap.Error(err))
		writeError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		loggerFrom(r).Error("failed to encode response", zap.Error(err))
		writeError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		loggerFrom(r).Warn("failed to write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// writeServiceError maps service errors to status codes. Anything it does
// not recognise is logged and hidden behind a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrSnapshotNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidProfile),
		errors.Is(err, service.ErrNoCourses),
		errors.Is(err, service.ErrTooManyCourses),
		errors.Is(err, service.ErrInvalidTotals),
		errors.Is(err, service.ErrInvalidTheme):
		writeError(w, err.Error(), http.StatusBadRequest)
	default:
		loggerFrom(r).Error("request failed", zap.Error(err))
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, "method not allowed", http.StatusMethodNotAllowed)
}
