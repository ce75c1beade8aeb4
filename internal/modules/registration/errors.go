package registration

import "errors"

var (
	ErrNotFound         = errors.New("tenant not found")
	ErrAlreadyProcessed = errors.New("registration already processed")
	ErrValidation       = errors.New("validation error")
)
