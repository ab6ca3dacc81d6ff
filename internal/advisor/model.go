package advisor

import "github.com/bondwise/bond-advisor-backend/internal/model"

// AnalysisRequest is the payload sent to the narrative analysis service.
// The service receives the chosen bond, the investor's preferences, and
// the projected payout schedule, and returns free text.
type AnalysisRequest struct {
	Bond        model.Bond          `json:"bond"`
	Preferences model.Preferences   `json:"preferences"`
	Payout      model.PayoutSummary `json:"payout"`
}

// AnalysisResponse is the narrative analysis service's reply.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
