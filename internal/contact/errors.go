package contact

import "errors"

var (
	// ErrMissingName is returned when the name field is empty or whitespace
	ErrMissingName = errors.New("Name is required")

	// ErrInvalidEmail is returned when the email field fails the basic
	// local@domain.tld shape
	ErrInvalidEmail = errors.New("Valid email is required")
)
