package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bondwise/bond-advisor-backend/internal/service"
)

// BondHandler handles HTTP requests for bond catalog endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the catalogService.
type BondHandler struct {
	catalogService *service.CatalogService
}

// NewBondHandler creates a new BondHandler with the provided service dependency.
func NewBondHandler(catalogService *service.CatalogService) *BondHandler {
	return &BondHandler{
		catalogService: catalogService,
	}
}

// GetAllBonds handles GET requests to retrieve the active, deduplicated catalog.
//
// Endpoint: GET /api/bond
// Response: 200 OK with array of Bond
// Error: 503 Service Unavailable when the catalog has not been loaded yet
func (h *BondHandler) GetAllBonds(w http.ResponseWriter, r *http.Request) {
	bonds, err := h.catalogService.ActiveBonds()
	if err != nil {
		respondCoreError(w, err, "failed to retrieve bonds")
		return
	}

	respondJSON(w, http.StatusOK, bonds)
}

// GetBond handles GET requests to retrieve one bond by ISIN.
//
// Endpoint: GET /api/bond/{isin}
// Response: 200 OK with Bond
// Error: 404 Not Found for unknown ISINs
func (h *BondHandler) GetBond(w http.ResponseWriter, r *http.Request) {
	isin := chi.URLParam(r, "isin")

	bond, err := h.catalogService.GetBond(isin)
	if err != nil {
		respondCoreError(w, err, "failed to retrieve bond")
		return
	}

	respondJSON(w, http.StatusOK, bond)
}

// ReloadResponse reports the outcome of a catalog reload.
type ReloadResponse struct {
	ActiveBonds int       `json:"active_bonds"`
	AsOf        time.Time `json:"as_of"`
}

// Reload handles POST requests to rebuild the catalog snapshot from its source.
//
// Endpoint: POST /api/bond/reload (API key protected)
// Response: 200 OK with ReloadResponse
// Error: 500 Internal Server Error if the reload fails; the previous
// snapshot stays in place
func (h *BondHandler) Reload(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now().UTC()

	count, err := h.catalogService.Reload(r.Context(), asOf)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "failed to reload catalog",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, ReloadResponse{
		ActiveBonds: count,
		AsOf:        asOf,
	})
}
