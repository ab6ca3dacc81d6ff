package model

// Preferences are the investor's stated targets. No defaults exist; the
// caller must supply all four, and validation rejects unusable values
// before they reach the scoring engine.
type Preferences struct {
	TargetCouponRate     float64 `json:"target_coupon_rate"`
	TargetRating         string  `json:"target_rating"`
	TargetFrequency      string  `json:"target_frequency"`
	TargetRedemptionYear int     `json:"target_redemption_year"`
}
