package scoring

// Weights control the contribution of each sub-score to the total.
type Weights struct {
	Coupon     float64
	Rating     float64
	Frequency  float64
	Redemption float64
}

// DefaultWeights returns the production weighting: coupon and rating
// dominate, payment frequency and redemption proximity refine.
func DefaultWeights() Weights {
	return Weights{
		Coupon:     0.3,
		Rating:     0.3,
		Frequency:  0.2,
		Redemption: 0.2,
	}
}
