// Package scoring computes preference affinity scores for bonds and ranks
// a catalog by them. All functions are pure: no I/O, deterministic output
// for identical input.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/model"
)

// couponPattern matches the first percentage token in free-form coupon
// text, e.g. "7.5% p.a." -> "7.5".
var couponPattern = regexp.MustCompile(`(\d+(\.\d+)?)%`)

// Engine scores bonds against investor preferences using a weighted sum of
// four independent sub-scores, each in [0,1].
type Engine struct {
	weights Weights
}

// NewEngine creates an Engine with the given weights.
func NewEngine(w Weights) *Engine {
	return &Engine{weights: w}
}

// ExtractCouponRate parses the first percentage token out of free-form
// coupon text. The second return reports whether a token was found;
// callers that want the legacy fallback treat "not found" as 0.0.
func ExtractCouponRate(text string) (float64, bool) {
	m := couponPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Score computes the weighted affinity of one bond to the preferences.
// The target coupon rate must be positive; zero or negative targets fail
// with an error wrapping apperrors.ErrInvalidPreference since the coupon
// sub-score divides by the target.
func (e *Engine) Score(bond model.Bond, prefs model.Preferences) (float64, error) {
	if prefs.TargetCouponRate <= 0 {
		return 0, fmt.Errorf("%w: target coupon rate must be positive, got %v",
			apperrors.ErrInvalidPreference, prefs.TargetCouponRate)
	}

	score := e.weights.Coupon * couponScore(bond.CouponRate, prefs.TargetCouponRate)
	score += e.weights.Rating * ratingScore(bond.CreditRating, prefs.TargetRating)
	score += e.weights.Frequency * frequencyScore(bond.PaymentFrequency, prefs.TargetFrequency)
	score += e.weights.Redemption * redemptionScore(bond.RedemptionDate.Year(), prefs.TargetRedemptionYear)

	return score, nil
}

// Rank scores every bond and returns the list ordered by score descending.
// The sort is stable: bonds with equal scores keep their input order, so
// re-ranking an already ranked list is idempotent. Empty input yields
// empty output.
func (e *Engine) Rank(bonds []model.Bond, prefs model.Preferences) ([]model.ScoredBond, error) {
	scored := make([]model.ScoredBond, 0, len(bonds))
	for _, b := range bonds {
		s, err := e.Score(b, prefs)
		if err != nil {
			return nil, err
		}
		scored = append(scored, model.ScoredBond{Bond: b, Score: s})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	return scored, nil
}

// couponScore decays linearly with the relative distance between the
// extracted bond coupon and the target. Text with no percentage token
// scores as a 0% coupon, zeroing this sub-score without failing the call.
func couponScore(couponText string, target float64) float64 {
	extracted, _ := ExtractCouponRate(couponText)
	return math.Max(0, 1-math.Abs(extracted-target)/target)
}

// ratingScore compares the first whitespace-delimited token of the bond's
// rating text ("AA Stable" -> "AA") against the target symbol. Exact match
// scores 1.0, a shared leading character 0.5, anything else 0. The
// comparison is case-sensitive.
func ratingScore(ratingText, target string) float64 {
	fields := strings.Fields(ratingText)
	if len(fields) == 0 || target == "" {
		return 0
	}
	symbol := fields[0]
	if symbol == target {
		return 1.0
	}
	if symbol[0] == target[0] {
		return 0.5
	}
	return 0
}

// frequencyScore is a permissive case-insensitive substring test:
// "Quarterly" matches "Quarterly Interest Payment".
func frequencyScore(frequencyText, target string) float64 {
	if target == "" {
		return 0
	}
	if strings.Contains(strings.ToLower(frequencyText), strings.ToLower(target)) {
		return 1.0
	}
	return 0
}

// redemptionScore decays linearly over a 10-year window around the target
// redemption year and clamps at 0 beyond it.
func redemptionScore(bondYear, targetYear int) float64 {
	return math.Max(0, 1-math.Abs(float64(bondYear-targetYear))/10)
}
