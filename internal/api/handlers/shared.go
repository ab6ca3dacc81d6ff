package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondCoreError maps core error types onto HTTP status codes.
// Input errors become 400 with the wrapped detail so the client can render
// the offending value and accepted alternatives; an unloaded catalog is a
// 503; everything else falls through to a 500 with fallbackMsg.
func respondCoreError(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidPreference),
		errors.Is(err, apperrors.ErrInvalidFrequency),
		errors.Is(err, apperrors.ErrUnparseableDate):
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "validation failed",
			"detail": err.Error(),
		})
	case errors.Is(err, apperrors.ErrBondNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": apperrors.ErrBondNotFound.Error(),
		})
	case errors.Is(err, apperrors.ErrCatalogNotLoaded):
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": apperrors.ErrCatalogNotLoaded.Error(),
		})
	default:
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  fallbackMsg,
			"detail": err.Error(),
		})
	}
}
