package errs

import "errors"

// Sentinel errors shared between the usecase layers and the HTTP surface.
// All of these are expected, recoverable outcomes the client branches on.
var (
	// Vehicle / slot errors
	ErrVehicleNotFound = errors.New("vehicle not found")

	// Window evaluation errors
	ErrInvalidWindow     = errors.New("invalid booking window")
	ErrNoAvailability    = errors.New("no availability for window")
	ErrCoverageGap       = errors.New("availability gap in window")
	ErrDurationViolation = errors.New("rental duration violation")

	// Submission errors
	ErrStaleAvailability = errors.New("availability changed since quote")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingConflict   = errors.New("booking conflict")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")
	ErrDuplicateBooking       = errors.New("duplicate booking request")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
