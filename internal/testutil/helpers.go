package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var isinCounter atomic.Int64

// MakeID generates a unique UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// MakeISIN generates a unique ISIN-shaped identifier for test bonds.
func MakeISIN() string {
	return fmt.Sprintf("INE%09d", isinCounter.Add(1))
}

// StringPtr returns a pointer to the given string, for raw feed fields.
func StringPtr(s string) *string {
	return &s
}

// FloatPtr returns a pointer to the given float, for raw feed fields.
func FloatPtr(f float64) *float64 {
	return &f
}
