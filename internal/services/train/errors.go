package train

import "errors"

// Departure-related errors
var (
	// Validation errors
	ErrEmptyDestination   = errors.New("destination cannot be empty")
	ErrDestinationTooLong = errors.New("destination cannot exceed 255 characters")
	ErrInvalidNumber      = errors.New("train number cannot be negative")
	ErrInvalidTime        = errors.New("departure time cannot be negative")
)
