package validation

import (
	"fmt"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrInvalidUUID = fmt.Errorf("invalid UUID format")
	ErrEmptyISIN   = fmt.Errorf("ISIN cannot be empty")
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateISIN checks that an ISIN path parameter is present.
// The catalog feed carries free-form identifiers, so only presence is
// enforced here; lookup decides whether the bond exists.
func ValidateISIN(isin string) error {
	if isin == "" {
		return ErrEmptyISIN
	}
	return nil
}
