package services

import (
	"errors"
)

// Service errors surface to handlers with a distinguishing kind so they can
// be mapped to HTTP status codes. Wrap with fmt.Errorf("...: %w", Err...)
// and test with errors.Is.
var (
	// ErrNotFound covers missing records and scoped-state lookups: a trade
	// request that exists but is not in the required status reports the
	// same error as one that does not exist at all.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers malformed input: non-positive quantities,
	// unknown enum values, missing required fields.
	ErrValidation = errors.New("validation failed")

	// ErrConflict covers concurrent mutation of the same stock row, where
	// the guarded update finds the expected quantity already drained.
	ErrConflict = errors.New("conflict")
)
