// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bondwise/bond-advisor-backend/internal/api/response"
	"github.com/bondwise/bond-advisor-backend/internal/validation"
)

// ValidateISINMiddleware validates that the isin URL parameter is present.
// Returns 400 Bad Request when it is missing. Apply to routes that address
// a single bond by ISIN.
//
// Example usage in router:
//
//	r.Route("/{isin}", func(r chi.Router) {
//	    r.Use(middleware.ValidateISINMiddleware)
//	    r.Get("/", handler.GetBond)
//	})
func ValidateISINMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isin := chi.URLParam(r, "isin")

		if err := validation.ValidateISIN(isin); err != nil {
			response.RespondError(w, http.StatusBadRequest, "valid ISIN is required", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
