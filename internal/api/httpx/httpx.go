package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fitlog/exercise-tracker/internal/apperr"
	"github.com/fitlog/exercise-tracker/internal/metrics"
)

type APIError struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details interface{}) {
	WriteJSON(w, status, APIError{
		Error:   msg,
		Code:    code,
		Details: details,
	})
}

// WriteAppError maps the error taxonomy onto HTTP statuses: validation
// 400, not found 404, store failure 502. Anything untyped is a 500.
func WriteAppError(w http.ResponseWriter, err error) {
	kind, ok := apperr.KindOf(err)
	if !ok {
		slog.Error("unhandled error", "err", err)
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
		return
	}

	switch kind {
	case apperr.KindValidation:
		WriteError(w, http.StatusBadRequest, kind.Code(), err.Error(), nil)
	case apperr.KindNotFound:
		WriteError(w, http.StatusNotFound, kind.Code(), err.Error(), nil)
	default:
		metrics.StoreErrorsTotal.Inc()
		slog.Error("store failure", "err", err)
		WriteError(w, http.StatusBadGateway, kind.Code(), "document store unavailable", nil)
	}
}
