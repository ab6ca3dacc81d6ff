package service

import (
	"time"

	"github.com/bondwise/bond-advisor-backend/internal/model"
	"github.com/bondwise/bond-advisor-backend/internal/payout"
	"github.com/bondwise/bond-advisor-backend/internal/scoring"
)

// PayoutService projects coupon payout schedules, both from explicit
// parameters and from a bond's raw catalog text fields.
type PayoutService struct{}

// NewPayoutService creates a new PayoutService.
func NewPayoutService() *PayoutService {
	return &PayoutService{}
}

// ComputeCouponSchedule projects a schedule from explicit parameters.
// The frequency and start date arrive as strings from the caller and are
// parsed here; an empty start date means today.
func (s *PayoutService) ComputeCouponSchedule(amount, rate, horizonYears float64, frequency, startDate string) (model.PayoutSummary, error) {
	freq, err := payout.ParseFrequency(frequency)
	if err != nil {
		return model.PayoutSummary{}, err
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if startDate != "" {
		start, err = payout.ParseStartDate(startDate)
		if err != nil {
			return model.PayoutSummary{}, err
		}
	}

	return payout.ComputeSchedule(amount, rate, horizonYears, freq, start)
}

// ScheduleForBond projects the schedule an investor would receive from a
// bond: the coupon rate and payout frequency come from the bond's raw text
// fields, and the horizon is the difference between the redemption year
// and the current year.
func (s *PayoutService) ScheduleForBond(bond model.Bond, amount float64, now time.Time) (model.PayoutSummary, error) {
	freq, err := payout.DetectFrequency(bond.PaymentFrequency)
	if err != nil {
		return model.PayoutSummary{}, err
	}

	// Text without a percentage token means a 0% coupon here, matching the
	// scoring engine's extraction fallback.
	rate, _ := scoring.ExtractCouponRate(bond.CouponRate)

	horizon := float64(bond.RedemptionDate.Year() - now.Year())

	return payout.ComputeSchedule(amount, rate, horizon, freq, now)
}
