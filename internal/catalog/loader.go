// Package catalog loads the bond catalog feed into canonical, immutable
// bond records and serves them through an atomically swappable snapshot.
package catalog

import (
	"fmt"
	"time"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/model"
)

// feedDateLayout is the date format of the catalog feed (DD-MM-YYYY).
const feedDateLayout = "02-01-2006"

// activeMarginDays is the minimum runway a bond must have before
// redemption to remain a useful recommendation. A bond redeeming exactly
// at the margin is excluded; one day past it is included.
const activeMarginDays = 380

// Load filters raw feed records down to active bonds, projects them onto
// the canonical field set, and deduplicates by ISIN.
//
// A record is active when its redemption date is strictly later than
// asOf + 380 days. Records with unparseable dates abort the load with an
// error wrapping apperrors.ErrMalformedRecord; they are never silently
// dropped. Duplicate ISINs are dropped silently, first occurrence wins.
// Output preserves input order minus removed records.
func Load(records []model.RawBondRecord, asOf time.Time) ([]model.Bond, error) {
	cutoff := asOf.AddDate(0, 0, activeMarginDays)

	active := make([]model.Bond, 0, len(records))
	for i, rec := range records {
		if rec.RedemptionDate == nil {
			return nil, fmt.Errorf("%w: record %d (isin %q) has no redemption date",
				apperrors.ErrMalformedRecord, i, text(rec.ISIN))
		}
		redemption, err := time.Parse(feedDateLayout, *rec.RedemptionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (isin %q) redemption date %q is not DD-MM-YYYY",
				apperrors.ErrMalformedRecord, i, text(rec.ISIN), *rec.RedemptionDate)
		}
		if !redemption.After(cutoff) {
			continue
		}

		var allotment time.Time
		if rec.AllotmentDate != nil {
			allotment, err = time.Parse(feedDateLayout, *rec.AllotmentDate)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d (isin %q) allotment date %q is not DD-MM-YYYY",
					apperrors.ErrMalformedRecord, i, text(rec.ISIN), *rec.AllotmentDate)
			}
		}

		active = append(active, model.Bond{
			ISIN:                  text(rec.ISIN),
			Company:               text(rec.Company),
			InstrumentName:        text(rec.InstrumentName),
			Description:           text(rec.Description),
			IssuePrice:            amount(rec.IssuePrice),
			FaceValue:             amount(rec.FaceValue),
			AllotmentDate:         allotment,
			RedemptionDate:        redemption,
			CouponRate:            text(rec.CouponRate),
			PaymentFrequency:      text(rec.PaymentFrequency),
			DefaultedInRedemption: text(rec.DefaultedInRedemption),
			CreditRating:          text(rec.CreditRating),
		})
	}

	// First-seen wins on ISIN collisions.
	seen := make(map[string]struct{}, len(active))
	unique := make([]model.Bond, 0, len(active))
	for _, b := range active {
		if _, ok := seen[b.ISIN]; ok {
			continue
		}
		seen[b.ISIN] = struct{}{}
		unique = append(unique, b)
	}

	return unique, nil
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func amount(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
