package model

import "time"

// PayoutEntry is a single coupon payment in a projected schedule.
type PayoutEntry struct {
	PaymentNumber int       `json:"payment_number"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
}

// PayoutSummary aggregates a projected coupon cash-flow schedule.
// Constructed fresh on each payout request and never mutated afterwards.
type PayoutSummary struct {
	InvestmentAmount      float64       `json:"investment_amount"`
	AnnualCouponRate      float64       `json:"annual_coupon_rate"`
	PayoutFrequency       string        `json:"payout_frequency"`
	PaymentsPerYear       int           `json:"payments_per_year"`
	AmountPerPayment      float64       `json:"amount_per_payment"`
	TotalPayments         int           `json:"total_payments"`
	TotalIncome           float64       `json:"total_income"`
	EffectiveAnnualReturn float64       `json:"effective_annual_return"`
	Schedule              []PayoutEntry `json:"schedule"`
}
