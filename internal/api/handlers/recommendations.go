package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bondwise/bond-advisor-backend/internal/api/request"
	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/model"
	"github.com/bondwise/bond-advisor-backend/internal/service"
)

// RecommendationHandler handles HTTP requests for bond recommendations.
type RecommendationHandler struct {
	recommendationService *service.RecommendationService
	payoutService         *service.PayoutService
	advisorService        *service.AdvisorService
}

// NewRecommendationHandler creates a new RecommendationHandler with the
// provided service dependencies.
func NewRecommendationHandler(
	recommendationService *service.RecommendationService,
	payoutService *service.PayoutService,
	advisorService *service.AdvisorService,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		payoutService:         payoutService,
		advisorService:        advisorService,
	}
}

// Recommend handles POST requests to rank the catalog against preferences.
//
// Endpoint: POST /api/recommendation
// Response: 200 OK with array of ScoredBond, best first
// Error: 400 Bad Request on invalid preferences, 503 when the catalog is
// not loaded
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req request.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ranked, err := h.recommendationService.Recommend(req.Preferences)
	if err != nil {
		respondCoreError(w, err, "failed to compute recommendations")
		return
	}

	if req.Limit > 0 && len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	respondJSON(w, http.StatusOK, ranked)
}

// AdviceResponse is the full advice flow result: the top-ranked bond, its
// projected payout schedule, and the narrative analysis when the advisor
// integration is available.
type AdviceResponse struct {
	Bond     model.Bond          `json:"bond"`
	Score    float64             `json:"score"`
	Payout   model.PayoutSummary `json:"payout"`
	Analysis string              `json:"analysis,omitempty"`
}

// Advice handles POST requests for the complete advice flow: rank, take
// the top bond, project its payout schedule for the requested investment
// amount, and ask the narrative service for an analysis. An unavailable
// advisor degrades to a response without analysis rather than an error.
//
// Endpoint: POST /api/recommendation/advice
// Response: 200 OK with AdviceResponse
// Error: 400 on invalid input, 404 when no bond qualifies, 503 when the
// catalog is not loaded
func (h *RecommendationHandler) Advice(w http.ResponseWriter, r *http.Request) {
	var req request.AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ranked, err := h.recommendationService.Recommend(req.Preferences)
	if err != nil {
		respondCoreError(w, err, "failed to compute recommendations")
		return
	}
	if len(ranked) == 0 {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "no suitable bonds in catalog"})
		return
	}

	top := ranked[0]
	summary, err := h.payoutService.ScheduleForBond(top.Bond, req.InvestmentAmount, time.Now().UTC())
	if err != nil {
		respondCoreError(w, err, "failed to project payout schedule")
		return
	}

	resp := AdviceResponse{
		Bond:   top.Bond,
		Score:  top.Score,
		Payout: summary,
	}

	analysis, err := h.advisorService.Analyze(r.Context(), top.Bond, req.Preferences, summary)
	switch {
	case err == nil:
		resp.Analysis = analysis
	case errors.Is(err, apperrors.ErrAdvisorConfigNotFound), errors.Is(err, apperrors.ErrAdvisorDisabled):
		// Advisor integration is optional; advice stands without it.
	default:
		// Collaborator failures degrade the response, never fail it.
	}

	respondJSON(w, http.StatusOK, resp)
}
