package checkout

import "errors"

var (
	ErrNotFound        = errors.New("tenant not found")
	ErrNotActive       = errors.New("tenant is not active")
	ErrAlreadyOnNotice = errors.New("tenant is already on notice")
	ErrNotOnNotice     = errors.New("tenant is not on notice")
	ErrNoticeTooShort  = errors.New("notice period too short")
	ErrNotReactivable  = errors.New("tenant cannot be reactivated")
	ErrValidation      = errors.New("validation error")
)
