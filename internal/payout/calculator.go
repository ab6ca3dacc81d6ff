// Package payout projects deterministic coupon cash-flow schedules from an
// investment amount, annual coupon rate, horizon, and payout frequency.
package payout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/model"
)

// startDateLayouts are the accepted start date formats, tried in order:
// ISO date-time, ISO date, DD-MM-YYYY. First match wins.
var startDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006",
}

// ParseStartDate parses a schedule start date, trying each accepted layout
// in order. Exhausting all layouts fails with an error wrapping
// apperrors.ErrUnparseableDate that names the input and the layouts tried.
func ParseStartDate(s string) (time.Time, error) {
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q, accepted formats are %s",
		apperrors.ErrUnparseableDate, s, strings.Join(startDateLayouts, ", "))
}

// NormalizeRate converts a numeric coupon rate to a fraction. Values above
// 1 are assumed to be percentages and divided by 100. The heuristic cannot
// tell a 1.0% coupon passed as 1.0 from a fraction of 1.0 (100%); callers
// passing sub-1% coupons must pass them as fractions.
func NormalizeRate(rate float64) float64 {
	if rate > 1 {
		return rate / 100
	}
	return rate
}

// ParseRate converts a coupon rate string to a fraction. A literal percent
// sign means percentage; otherwise the numeric value goes through the
// NormalizeRate heuristic.
func ParseRate(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if strings.Contains(trimmed, "%") {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(trimmed, "%", "")), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: cannot parse rate %q", apperrors.ErrInvalidPreference, s)
		}
		return v / 100, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse rate %q", apperrors.ErrInvalidPreference, s)
	}
	return NormalizeRate(v), nil
}

// ComputeSchedule projects the coupon payout schedule for an investment.
//
// The annual rate goes through the NormalizeRate heuristic, so both 8.0
// and 0.08 mean an 8% coupon. The per-payment amount is rounded to two
// decimals before the total income is derived from it, so small rounding
// drift accumulates across many payments; that is the contract, not a
// defect. Payment dates are spaced floor(i*365/paymentsPerYear) days from
// the start date, a calendar approximation rather than exact month or
// quarter boundaries.
func ComputeSchedule(amount, annualRate, horizonYears float64, freq Frequency, start time.Time) (model.PayoutSummary, error) {
	if amount <= 0 {
		return model.PayoutSummary{}, fmt.Errorf("%w: investment amount must be positive, got %v",
			apperrors.ErrInvalidPreference, amount)
	}
	if horizonYears <= 0 {
		return model.PayoutSummary{}, fmt.Errorf("%w: horizon must be positive, got %v years",
			apperrors.ErrInvalidPreference, horizonYears)
	}

	paymentsPerYear := freq.PaymentsPerYear()
	if paymentsPerYear == 0 {
		return model.PayoutSummary{}, fmt.Errorf("%w: %q, choose from %v",
			apperrors.ErrInvalidFrequency, freq, ValidFrequencies)
	}

	rate := NormalizeRate(annualRate)
	totalPayments := int(horizonYears * float64(paymentsPerYear))
	perPayment := round2(rate * amount / float64(paymentsPerYear))
	totalIncome := round2(perPayment * float64(totalPayments))

	schedule := make([]model.PayoutEntry, 0, totalPayments)
	for i := 1; i <= totalPayments; i++ {
		schedule = append(schedule, model.PayoutEntry{
			PaymentNumber: i,
			Date:          start.AddDate(0, 0, i*365/paymentsPerYear),
			Amount:        perPayment,
		})
	}

	return model.PayoutSummary{
		InvestmentAmount:      amount,
		AnnualCouponRate:      rate,
		PayoutFrequency:       string(freq),
		PaymentsPerYear:       paymentsPerYear,
		AmountPerPayment:      perPayment,
		TotalPayments:         totalPayments,
		TotalIncome:           totalIncome,
		EffectiveAnnualReturn: round4(totalIncome / amount / horizonYears),
		Schedule:              schedule,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
