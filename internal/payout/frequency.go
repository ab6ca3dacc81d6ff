package payout

import (
	"fmt"
	"strings"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
)

// Frequency is a recognized coupon payout cadence.
type Frequency string

const (
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiAnnual Frequency = "semi-annual"
	FrequencyAnnual     Frequency = "annual"
)

// ValidFrequencies lists the accepted payout frequencies, in payment-count
// order. Used in error messages so callers can render the allowed set.
var ValidFrequencies = []Frequency{
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencySemiAnnual,
	FrequencyAnnual,
}

// PaymentsPerYear maps a frequency to its payment count.
func (f Frequency) PaymentsPerYear() int {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencyQuarterly:
		return 4
	case FrequencySemiAnnual:
		return 2
	case FrequencyAnnual:
		return 1
	}
	return 0
}

// ParseFrequency normalizes a frequency string. Matching is
// case-insensitive and tolerates the spaced and unhyphenated spellings of
// semi-annual. Unrecognized input fails with an error wrapping
// apperrors.ErrInvalidFrequency that lists the accepted values.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return FrequencyMonthly, nil
	case "quarterly":
		return FrequencyQuarterly, nil
	case "semi-annual", "semi annual", "semiannual":
		return FrequencySemiAnnual, nil
	case "annual":
		return FrequencyAnnual, nil
	}
	return "", fmt.Errorf("%w: %q, choose from %v", apperrors.ErrInvalidFrequency, s, ValidFrequencies)
}

// DetectFrequency maps free-form catalog frequency text, such as
// "Quarterly Interest Payment" or "Payable Half Yearly", onto a Frequency.
// Semi-annual spellings are checked before annual so "semi-annually" does
// not fall through to the annual bucket.
func DetectFrequency(text string) (Frequency, error) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "month"):
		return FrequencyMonthly, nil
	case strings.Contains(lower, "quarter"):
		return FrequencyQuarterly, nil
	case strings.Contains(lower, "semi"), strings.Contains(lower, "half"):
		return FrequencySemiAnnual, nil
	case strings.Contains(lower, "annual"), strings.Contains(lower, "year"):
		return FrequencyAnnual, nil
	}
	return "", fmt.Errorf("%w: cannot detect frequency in %q, choose from %v",
		apperrors.ErrInvalidFrequency, text, ValidFrequencies)
}
