package report

import "errors"

var (
	ErrNotFound = errors.New("daily report not found")
	ErrClosed   = errors.New("daily report is closed")
)
