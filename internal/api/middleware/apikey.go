package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/bondwise/bond-advisor-backend/internal/api/response"
)

// APIKeyMiddleware guards admin routes with a shared API key. The expected
// key comes from INTERNAL_API_KEY; clients send it in the X-API-Key
// header. Requests fail closed when the key is unset.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusServiceUnavailable, "unauthorized", "API key not configured")
			return
		}

		provided := r.Header.Get("X-API-Key")
		if provided == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
