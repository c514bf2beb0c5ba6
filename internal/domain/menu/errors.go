package menu

import "errors"

var (
	ErrCategoryNotFound = errors.New("menu category not found")
	ErrItemNotFound     = errors.New("menu item not found")
	ErrInvalidBackRate  = errors.New("back rate must be between 0 and 1")
	ErrInvalidPrice     = errors.New("price must not be negative")
)
