package table

import "errors"

var (
	ErrNotFound        = errors.New("table not found")
	ErrDuplicateNumber = errors.New("table number already in use")
	ErrOccupied        = errors.New("table is occupied")
	ErrNotAvailable    = errors.New("table is not available")
	ErrInvalidStatus   = errors.New("invalid table status")
)
