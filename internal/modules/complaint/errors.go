package complaint

import "errors"

var (
	ErrNotFound   = errors.New("complaint not found")
	ErrValidation = errors.New("validation error")
)
