package occupancy

import "errors"

var (
	ErrNotFound    = errors.New("room not found")
	ErrRoomFull    = errors.New("room has no free beds")
	ErrMaintenance = errors.New("room is under maintenance")
	ErrInactive    = errors.New("room is deactivated")
	ErrValidation  = errors.New("validation error")
)
