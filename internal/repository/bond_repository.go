package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/bondwise/bond-advisor-backend/internal/model"
)

// BondRepository provides data access methods for the bond catalog table.
// Rows store the raw feed fields as delivered, dates included, so the
// loader remains the single place where feed semantics are interpreted.
type BondRepository struct {
	db *sql.DB
}

// NewBondRepository creates a new BondRepository with the provided database connection.
func NewBondRepository(db *sql.DB) *BondRepository {
	return &BondRepository{db: db}
}

// Records retrieves all raw catalog records in insertion order.
// It satisfies catalog.Source, making the database the snapshot source.
func (r *BondRepository) Records(ctx context.Context) ([]model.RawBondRecord, error) {
	query := `
		SELECT isin, company, instrument_name, description, issue_price, face_value,
		       allotment_date, redemption_date, coupon_rate, payment_frequency,
		       defaulted_in_redemption, credit_rating
		FROM bond
		ORDER BY rowid
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bond table: %w", err)
	}
	defer rows.Close()

	records := []model.RawBondRecord{}

	for rows.Next() {
		var (
			rec                   model.RawBondRecord
			isin                  sql.NullString
			company               sql.NullString
			instrumentName        sql.NullString
			description           sql.NullString
			issuePrice            sql.NullFloat64
			faceValue             sql.NullFloat64
			allotmentDate         sql.NullString
			redemptionDate        sql.NullString
			couponRate            sql.NullString
			paymentFrequency      sql.NullString
			defaultedInRedemption sql.NullString
			creditRating          sql.NullString
		)

		err := rows.Scan(
			&isin,
			&company,
			&instrumentName,
			&description,
			&issuePrice,
			&faceValue,
			&allotmentDate,
			&redemptionDate,
			&couponRate,
			&paymentFrequency,
			&defaultedInRedemption,
			&creditRating,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bond table results: %w", err)
		}

		rec.ISIN = nullableString(isin)
		rec.Company = nullableString(company)
		rec.InstrumentName = nullableString(instrumentName)
		rec.Description = nullableString(description)
		rec.IssuePrice = nullableFloat(issuePrice)
		rec.FaceValue = nullableFloat(faceValue)
		rec.AllotmentDate = nullableString(allotmentDate)
		rec.RedemptionDate = nullableString(redemptionDate)
		rec.CouponRate = nullableString(couponRate)
		rec.PaymentFrequency = nullableString(paymentFrequency)
		rec.DefaultedInRedemption = nullableString(defaultedInRedemption)
		rec.CreditRating = nullableString(creditRating)

		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bond table: %w", err)
	}

	return records, nil
}

// ImportRecords inserts raw catalog records, preserving feed order.
// Returns the number of records inserted.
func (r *BondRepository) ImportRecords(records []model.RawBondRecord) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
		INSERT INTO bond (id, isin, company, instrument_name, description, issue_price,
		                  face_value, allotment_date, redemption_date, coupon_rate,
		                  payment_frequency, defaulted_in_redemption, credit_rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare bond insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.Exec(
			uuid.New().String(),
			rec.ISIN,
			rec.Company,
			rec.InstrumentName,
			rec.Description,
			rec.IssuePrice,
			rec.FaceValue,
			rec.AllotmentDate,
			rec.RedemptionDate,
			rec.CouponRate,
			rec.PaymentFrequency,
			rec.DefaultedInRedemption,
			rec.CreditRating,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert bond record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit bond import: %w", err)
	}

	return len(records), nil
}

// Count returns the number of stored catalog records.
func (r *BondRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM bond").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bond table: %w", err)
	}
	return count, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
