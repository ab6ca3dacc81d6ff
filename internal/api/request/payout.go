package request

// PayoutRequest carries the parameters of a coupon schedule projection.
// StartDate accepts ISO date-time, ISO date, or DD-MM-YYYY; empty means
// today.
type PayoutRequest struct {
	InvestmentAmount float64 `json:"investment_amount"`
	AnnualCouponRate float64 `json:"annual_coupon_rate"`
	HorizonYears     float64 `json:"horizon_years"`
	PayoutFrequency  string  `json:"payout_frequency"`
	StartDate        string  `json:"start_date"`
}
