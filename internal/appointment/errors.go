package appointment

import "errors"

// Domain-specific errors for the appointment package.
var (
	ErrMissingText = errors.New("text is required")
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)
