package services

import "errors"

// Service errors are recoverable conditions returned to the presentation
// layer, never fatal. Controllers map them to HTTP status codes.
var (
	// ErrNotFound means a lookup by identifier matched no record.
	ErrNotFound = errors.New("record not found")

	// ErrNotEligible means a business precondition was unmet,
	// e.g. booking a cylinder for an inactive connection.
	ErrNotEligible = errors.New("not eligible")

	// ErrInvalidInput means a required field was empty or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition means a status change was requested from a
	// terminal or inapplicable state.
	ErrInvalidTransition = errors.New("invalid status transition")
)
