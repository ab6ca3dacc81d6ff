package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bondwise/bond-advisor-backend/internal/api/request"
	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/service"
)

// AdvisorHandler handles HTTP requests for narrative analysis service
// configuration. The stored token is write-only: it is accepted on PUT and
// never echoed back.
type AdvisorHandler struct {
	advisorService *service.AdvisorService
}

// NewAdvisorHandler creates a new AdvisorHandler with the provided service dependency.
func NewAdvisorHandler(advisorService *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService: advisorService,
	}
}

// GetConfig handles GET requests to retrieve the advisor configuration.
//
// Endpoint: GET /api/advisor/config (API key protected)
// Response: 200 OK with AdvisorConfig (token omitted)
// Error: 404 Not Found when no configuration is stored
func (h *AdvisorHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.advisorService.GetConfig()
	if err != nil {
		if errors.Is(err, apperrors.ErrAdvisorConfigNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{
				"error": apperrors.ErrAdvisorConfigNotFound.Error(),
			})
			return
		}
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "failed to retrieve advisor configuration",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// SetConfig handles PUT requests to store the advisor configuration.
// The token is encrypted before it reaches the database.
//
// Endpoint: PUT /api/advisor/config (API key protected)
// Response: 200 OK with the stored AdvisorConfig (token omitted)
// Error: 400 Bad Request on missing endpoint or token
func (h *AdvisorHandler) SetConfig(w http.ResponseWriter, r *http.Request) {
	var req request.AdvisorConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Endpoint == "" || req.Token == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "endpoint and token are required",
		})
		return
	}

	cfg, err := h.advisorService.SetConfig(req.Endpoint, req.Token, req.Enabled)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "failed to store advisor configuration",
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}
