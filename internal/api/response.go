package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/cardledger/internal/sales"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}

// serviceError maps errors from the sales service to HTTP responses.
func serviceError(w http.ResponseWriter, err error) {
	var malformed *sales.MalformedInputError
	var invalid *sales.ValidationError
	switch {
	case errors.As(err, &malformed):
		jsonError(w, http.StatusBadRequest, malformed.Error())
	case errors.As(err, &invalid):
		jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error": invalid.Error(),
			"known": invalid.Known,
		})
	case errors.Is(err, sales.ErrNotFound):
		jsonError(w, http.StatusNotFound, "sale not found")
	case errors.Is(err, sales.ErrConflict):
		jsonError(w, http.StatusConflict, "sale already exists")
	default:
		slog.Error("request failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
