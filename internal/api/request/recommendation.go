package request

import "github.com/bondwise/bond-advisor-backend/internal/model"

// RecommendationRequest carries investor preferences for a ranking call.
// Limit optionally truncates the ranked list; zero means no truncation.
type RecommendationRequest struct {
	Preferences model.Preferences `json:"preferences"`
	Limit       int               `json:"limit"`
}

// AdviceRequest asks for the full advice flow: top recommendation, payout
// projection for the given investment amount, and narrative analysis when
// the advisor integration is available.
type AdviceRequest struct {
	Preferences      model.Preferences `json:"preferences"`
	InvestmentAmount float64           `json:"investment_amount"`
}
