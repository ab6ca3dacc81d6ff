package validation

import (
	"fmt"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/model"
)

// ValidatePreferences rejects preference sets the scoring engine cannot
// use. The target coupon rate guards a division in the coupon sub-score,
// so zero and negative values are refused here rather than deep inside
// scoring.
func ValidatePreferences(prefs model.Preferences) error {
	if prefs.TargetCouponRate <= 0 {
		return fmt.Errorf("%w: target coupon rate must be positive, got %v",
			apperrors.ErrInvalidPreference, prefs.TargetCouponRate)
	}
	if prefs.TargetRating == "" {
		return fmt.Errorf("%w: target rating is required", apperrors.ErrInvalidPreference)
	}
	if prefs.TargetFrequency == "" {
		return fmt.Errorf("%w: target frequency is required", apperrors.ErrInvalidPreference)
	}
	if prefs.TargetRedemptionYear <= 0 {
		return fmt.Errorf("%w: target redemption year must be positive, got %d",
			apperrors.ErrInvalidPreference, prefs.TargetRedemptionYear)
	}
	return nil
}
