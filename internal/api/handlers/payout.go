package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bondwise/bond-advisor-backend/internal/api/request"
	"github.com/bondwise/bond-advisor-backend/internal/service"
)

// PayoutHandler handles HTTP requests for coupon schedule projections.
type PayoutHandler struct {
	payoutService *service.PayoutService
}

// NewPayoutHandler creates a new PayoutHandler with the provided service dependency.
func NewPayoutHandler(payoutService *service.PayoutService) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

// ComputeSchedule handles POST requests to project a coupon payout schedule.
//
// Endpoint: POST /api/payout
// Response: 200 OK with PayoutSummary
// Error: 400 Bad Request on invalid amount, horizon, frequency, or start date
func (h *PayoutHandler) ComputeSchedule(w http.ResponseWriter, r *http.Request) {
	var req request.PayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	summary, err := h.payoutService.ComputeCouponSchedule(
		req.InvestmentAmount,
		req.AnnualCouponRate,
		req.HorizonYears,
		req.PayoutFrequency,
		req.StartDate,
	)
	if err != nil {
		respondCoreError(w, err, "failed to compute payout schedule")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
