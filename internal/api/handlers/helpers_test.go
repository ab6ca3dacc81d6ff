package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bondwise/bond-advisor-backend/internal/catalog"
	"github.com/bondwise/bond-advisor-backend/internal/repository"
	"github.com/bondwise/bond-advisor-backend/internal/scoring"
	"github.com/bondwise/bond-advisor-backend/internal/service"
	"github.com/bondwise/bond-advisor-backend/internal/testutil"
)

// testSecretKey is a fixed fernet key for tests only.
const testSecretKey = "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="

var handlerAsOf = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// testEnv wires the full service stack onto an in-memory database.
type testEnv struct {
	db             *sql.DB
	store          *catalog.Store
	catalog        *service.CatalogService
	recommendation *service.RecommendationService
	payout         *service.PayoutService
	advisor        *service.AdvisorService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	store := catalog.NewStore(repository.NewBondRepository(db))

	return &testEnv{
		db:      db,
		store:   store,
		catalog: service.NewCatalogService(store),
		recommendation: service.NewRecommendationService(
			store,
			scoring.NewEngine(scoring.DefaultWeights()),
		),
		payout:  service.NewPayoutService(),
		advisor: service.NewAdvisorService(repository.NewAdvisorConfigRepository(db), testSecretKey),
	}
}

// reload rebuilds the snapshot after records were inserted.
func (e *testEnv) reload(t *testing.T) {
	t.Helper()
	if _, err := e.store.Reload(context.Background(), handlerAsOf); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
}

// postJSON builds a POST request with a JSON-encoded body.
func postJSON(t *testing.T, path string, body interface{}) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to encode request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// putJSON builds a PUT request with a JSON-encoded body.
func putJSON(t *testing.T, path string, body interface{}) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to encode request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeJSON decodes a response body into out.
func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}
