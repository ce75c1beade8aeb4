package billing

import "errors"

var (
	ErrNotFound   = errors.New("tenant not found")
	ErrValidation = errors.New("validation error")
)
