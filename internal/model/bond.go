package model

import "time"

// RawBondRecord is one record of the persisted catalog feed. Field names
// mirror the upstream feed; dates arrive as DD-MM-YYYY strings. Pointer
// fields distinguish absent values from empty ones.
type RawBondRecord struct {
	Company               *string  `json:"COMPANY"`
	ISIN                  *string  `json:"ISIN"`
	InstrumentName        *string  `json:"NAME_OF_THE_INSTRUMENT"`
	Description           *string  `json:"DESCRIPTION_IN_NSDL"`
	IssuePrice            *float64 `json:"ISSUE_PRICE"`
	FaceValue             *float64 `json:"FACEVALUE"`
	AllotmentDate         *string  `json:"DATE_OF_ALLOTMENT"`
	RedemptionDate        *string  `json:"REDEMPTION"`
	CouponRate            *string  `json:"COUPON_RATE"`
	PaymentFrequency      *string  `json:"FREQUENCY_OF_THE_INTEREST_PAYMENT"`
	DefaultedInRedemption *string  `json:"DEFAULTED_IN_REDEMPTION"`
	CreditRating          *string  `json:"CREDIT_RATING_CREDIT_RATING_AGENCY"`
}

// Bond is the canonical, immutable catalog entry used by scoring and payout.
// Fields absent in the raw feed carry their zero value and are omitted from
// JSON output rather than defaulted to a fabricated value.
type Bond struct {
	ISIN                  string    `json:"isin"`
	Company               string    `json:"company,omitempty"`
	InstrumentName        string    `json:"instrument_name,omitempty"`
	Description           string    `json:"description,omitempty"`
	IssuePrice            float64   `json:"issue_price,omitempty"`
	FaceValue             float64   `json:"face_value,omitempty"`
	AllotmentDate         time.Time `json:"allotment_date,omitzero"`
	RedemptionDate        time.Time `json:"redemption_date"`
	CouponRate            string    `json:"coupon_rate,omitempty"`
	PaymentFrequency      string    `json:"payment_frequency,omitempty"`
	DefaultedInRedemption string    `json:"defaulted_in_redemption,omitempty"`
	CreditRating          string    `json:"credit_rating,omitempty"`
}

// ScoredBond pairs a bond with its computed preference affinity score.
// Ephemeral: recomputed per request, never persisted.
type ScoredBond struct {
	Bond  Bond    `json:"bond"`
	Score float64 `json:"score"`
}
