package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bondwise/bond-advisor-backend/internal/api/middleware"
	"github.com/bondwise/bond-advisor-backend/internal/testutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyMiddleware(t *testing.T) {
	t.Run("passes through with the correct key", func(t *testing.T) {
		t.Setenv("INTERNAL_API_KEY", "test-key")

		handler := middleware.APIKeyMiddleware(okHandler())
		req := httptest.NewRequest(http.MethodPost, "/api/bond/reload", nil)
		req.Header.Set("X-API-Key", "test-key")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rr.Code)
		}
	})

	t.Run("rejects a missing key", func(t *testing.T) {
		t.Setenv("INTERNAL_API_KEY", "test-key")

		handler := middleware.APIKeyMiddleware(okHandler())
		req := httptest.NewRequest(http.MethodPost, "/api/bond/reload", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rr.Code)
		}
	})

	t.Run("rejects a wrong key", func(t *testing.T) {
		t.Setenv("INTERNAL_API_KEY", "test-key")

		handler := middleware.APIKeyMiddleware(okHandler())
		req := httptest.NewRequest(http.MethodPost, "/api/bond/reload", nil)
		req.Header.Set("X-API-Key", "wrong-key")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rr.Code)
		}
	})

	t.Run("fails closed when no key is configured", func(t *testing.T) {
		t.Setenv("INTERNAL_API_KEY", "")

		handler := middleware.APIKeyMiddleware(okHandler())
		req := httptest.NewRequest(http.MethodPost, "/api/bond/reload", nil)
		req.Header.Set("X-API-Key", "anything")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", rr.Code)
		}
	})
}

func TestValidateISINMiddleware(t *testing.T) {
	t.Run("passes through with a non-empty ISIN", func(t *testing.T) {
		handler := middleware.ValidateISINMiddleware(okHandler())
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/bond/INE000000001",
			map[string]string{"isin": "INE000000001"},
		)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rr.Code)
		}
	})

	t.Run("rejects an empty ISIN", func(t *testing.T) {
		handler := middleware.ValidateISINMiddleware(okHandler())
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/bond/",
			map[string]string{"isin": ""},
		)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
	})
}
