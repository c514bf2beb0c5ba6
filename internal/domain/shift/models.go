package shift

import "time"

const StatusWorking = "working"

// Shift is one cast member's attendance for a calendar date. The absence
// of a row means a day off. EndTime nil means the end is unknown: still
// working today, or never clocked out on a past date.
type Shift struct {
	ID        string    `json:"id"`
	CastID    string    `json:"castId"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   *string   `json:"endTime,omitempty"`
	Status    string    `json:"status"`
}
