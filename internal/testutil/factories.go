package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/bondwise/bond-advisor-backend/internal/model"
)

// BondRecordBuilder provides a fluent interface for creating raw catalog
// records in tests. Defaults describe a healthy, far-from-redemption bond
// so tests only override what they assert on.
//
// Example usage:
//
//	rec := testutil.NewBondRecord().
//	    WithISIN("INE000000001").
//	    WithCouponRate("9.5% p.a.").
//	    Build(t, db)
type BondRecordBuilder struct {
	record model.RawBondRecord
}

// NewBondRecord creates a builder with sensible defaults.
func NewBondRecord() *BondRecordBuilder {
	return &BondRecordBuilder{
		record: model.RawBondRecord{
			Company:               StringPtr("Acme Infrastructure Ltd"),
			ISIN:                  StringPtr(MakeISIN()),
			InstrumentName:        StringPtr("Secured Redeemable Non-Convertible Debentures"),
			Description:           StringPtr("8.5% Secured NCD 2035"),
			IssuePrice:            FloatPtr(1000),
			FaceValue:             FloatPtr(1000),
			AllotmentDate:         StringPtr("15-06-2020"),
			RedemptionDate:        StringPtr("15-06-2035"),
			CouponRate:            StringPtr("8.5% p.a."),
			PaymentFrequency:      StringPtr("Quarterly Interest Payment"),
			DefaultedInRedemption: StringPtr("No"),
			CreditRating:          StringPtr("AA Stable by CRISIL"),
		},
	}
}

// WithISIN sets the ISIN.
func (b *BondRecordBuilder) WithISIN(isin string) *BondRecordBuilder {
	b.record.ISIN = StringPtr(isin)
	return b
}

// WithCompany sets the issuing company.
func (b *BondRecordBuilder) WithCompany(company string) *BondRecordBuilder {
	b.record.Company = StringPtr(company)
	return b
}

// WithRedemptionDate sets the redemption date (DD-MM-YYYY).
func (b *BondRecordBuilder) WithRedemptionDate(date string) *BondRecordBuilder {
	b.record.RedemptionDate = StringPtr(date)
	return b
}

// WithAllotmentDate sets the allotment date (DD-MM-YYYY).
func (b *BondRecordBuilder) WithAllotmentDate(date string) *BondRecordBuilder {
	b.record.AllotmentDate = StringPtr(date)
	return b
}

// WithCouponRate sets the coupon rate text as it appears in the feed.
func (b *BondRecordBuilder) WithCouponRate(rate string) *BondRecordBuilder {
	b.record.CouponRate = StringPtr(rate)
	return b
}

// WithPaymentFrequency sets the payment frequency text.
func (b *BondRecordBuilder) WithPaymentFrequency(frequency string) *BondRecordBuilder {
	b.record.PaymentFrequency = StringPtr(frequency)
	return b
}

// WithCreditRating sets the credit rating text.
func (b *BondRecordBuilder) WithCreditRating(rating string) *BondRecordBuilder {
	b.record.CreditRating = StringPtr(rating)
	return b
}

// WithFaceValue sets the face value.
func (b *BondRecordBuilder) WithFaceValue(value float64) *BondRecordBuilder {
	b.record.FaceValue = FloatPtr(value)
	return b
}

// WithoutRedemptionDate clears the redemption date, producing a malformed record.
func (b *BondRecordBuilder) WithoutRedemptionDate() *BondRecordBuilder {
	b.record.RedemptionDate = nil
	return b
}

// WithoutCouponRate clears the coupon rate field.
func (b *BondRecordBuilder) WithoutCouponRate() *BondRecordBuilder {
	b.record.CouponRate = nil
	return b
}

// Record returns the built record without touching the database.
func (b *BondRecordBuilder) Record() model.RawBondRecord {
	return b.record
}

// Build inserts the record into the bond table and returns it.
func (b *BondRecordBuilder) Build(t *testing.T, db *sql.DB) model.RawBondRecord {
	t.Helper()

	query := `
		INSERT INTO bond (id, isin, company, instrument_name, description, issue_price,
		                  face_value, allotment_date, redemption_date, coupon_rate,
		                  payment_frequency, defaulted_in_redemption, credit_rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		MakeID(),
		b.record.ISIN,
		b.record.Company,
		b.record.InstrumentName,
		b.record.Description,
		b.record.IssuePrice,
		b.record.FaceValue,
		b.record.AllotmentDate,
		b.record.RedemptionDate,
		b.record.CouponRate,
		b.record.PaymentFrequency,
		b.record.DefaultedInRedemption,
		b.record.CreditRating,
	)
	if err != nil {
		t.Fatalf("Failed to insert bond record: %v", err)
	}

	return b.record
}

// BondBuilder provides a fluent interface for creating canonical bonds
// directly, for scoring and payout tests that never touch the feed layer.
type BondBuilder struct {
	bond model.Bond
}

// NewBond creates a builder with sensible defaults.
func NewBond() *BondBuilder {
	return &BondBuilder{
		bond: model.Bond{
			ISIN:             MakeISIN(),
			Company:          "Acme Infrastructure Ltd",
			InstrumentName:   "Secured Redeemable Non-Convertible Debentures",
			FaceValue:        1000,
			RedemptionDate:   mustParseDate("15-06-2035"),
			CouponRate:       "8.5% p.a.",
			PaymentFrequency: "Quarterly Interest Payment",
			CreditRating:     "AA Stable by CRISIL",
		},
	}
}

// WithISIN sets the ISIN.
func (b *BondBuilder) WithISIN(isin string) *BondBuilder {
	b.bond.ISIN = isin
	return b
}

// WithCouponRate sets the coupon rate text.
func (b *BondBuilder) WithCouponRate(rate string) *BondBuilder {
	b.bond.CouponRate = rate
	return b
}

// WithPaymentFrequency sets the payment frequency text.
func (b *BondBuilder) WithPaymentFrequency(frequency string) *BondBuilder {
	b.bond.PaymentFrequency = frequency
	return b
}

// WithCreditRating sets the credit rating text.
func (b *BondBuilder) WithCreditRating(rating string) *BondBuilder {
	b.bond.CreditRating = rating
	return b
}

// WithRedemptionDate sets the redemption date (DD-MM-YYYY).
func (b *BondBuilder) WithRedemptionDate(date string) *BondBuilder {
	b.bond.RedemptionDate = mustParseDate(date)
	return b
}

// Bond returns the built bond.
func (b *BondBuilder) Bond() model.Bond {
	return b.bond
}

func mustParseDate(s string) (t time.Time) {
	t, err := time.Parse("02-01-2006", s)
	if err != nil {
		panic("testutil: bad date literal: " + s)
	}
	return t
}
