package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrBondNotFound indicates that no bond with the given ISIN exists in the
	// current catalog snapshot.
	ErrBondNotFound = errors.New("bond not found")

	// ErrCatalogNotLoaded indicates that the catalog snapshot has not been
	// loaded yet and there is nothing to serve recommendations from.
	ErrCatalogNotLoaded = errors.New("catalog not loaded")

	// ErrAdvisorConfigNotFound indicates advisor configuration has not been set up.
	ErrAdvisorConfigNotFound = errors.New("advisor configuration not found")
)

// Input errors represent validation failures on caller-supplied values.
// They are recoverable by the caller; the boundary layer converts them into
// user-facing messages. Wrapped details carry the offending value and the
// accepted alternatives.
var (
	// ErrMalformedRecord indicates a catalog record whose dates could not be
	// parsed. Fatal for that record; the loader aborts rather than silently
	// dropping it.
	ErrMalformedRecord = errors.New("malformed catalog record")

	// ErrInvalidPreference indicates an unusable preference value, such as a
	// zero or negative target coupon rate that would divide by zero in scoring.
	ErrInvalidPreference = errors.New("invalid preference")

	// ErrInvalidFrequency indicates an unrecognized payout frequency string.
	// The wrapped detail lists the accepted values.
	ErrInvalidFrequency = errors.New("invalid payout frequency")

	// ErrUnparseableDate indicates a start date matching none of the accepted
	// formats. The wrapped detail names the input and the formats tried.
	ErrUnparseableDate = errors.New("unparseable date")
)

// Collaborator errors represent unavailability of the external narrative
// analysis service. Recommendations degrade gracefully when these occur.
var (
	// ErrAdvisorDisabled indicates the advisor integration exists but is
	// switched off in its stored configuration.
	ErrAdvisorDisabled = errors.New("advisor integration is disabled")
)
