package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// Specific validation failures. Each wraps ErrValidation so callers can
// match at either granularity with errors.Is.
var (
	// ErrInvalidEmail rejects input that does not look like local@domain.tld.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email", ErrValidation)

	// ErrDuplicateEmail rejects an email whose normalized form is already
	// present in the guest roster.
	ErrDuplicateEmail = fmt.Errorf("%w: email already added", ErrValidation)

	// ErrMissingFields rejects a wizard advance while destination or one
	// of the date bounds is still empty.
	ErrMissingFields = fmt.Errorf("%w: fill in destination and travel dates", ErrValidation)

	// ErrDestinationTooShort rejects destinations shorter than 4 characters
	// after trimming.
	ErrDestinationTooShort = fmt.Errorf("%w: destination must be at least 4 characters", ErrValidation)
)
