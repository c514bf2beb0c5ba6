package order

import "errors"

var (
	ErrNotFound       = errors.New("order not found")
	ErrNotActive      = errors.New("order is not active")
	ErrItemNoBack     = errors.New("item does not carry a back rate")
	ErrUnavailable    = errors.New("menu item is not available")
	ErrLineNotFound   = errors.New("order line not found")
	ErrEmptyGuestList = errors.New("at least one guest is required")
)
