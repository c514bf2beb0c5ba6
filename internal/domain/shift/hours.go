package shift

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrBadClock = errors.New("clock value must be HH:MM")

// ClockMinutes parses an "HH:MM" clock value into minutes since midnight.
func ClockMinutes(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, ErrBadClock
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrBadClock
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrBadClock
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, ErrBadClock
	}
	return hours*60 + minutes, nil
}

// WorkedHours computes the hours a shift covered on its date.
//
// An open-ended shift is treated as ongoing: on the current day the end
// defaults to now's clock, on a past date to the store's closing time.
// An end at or before the start means the shift ran past midnight and
// gains 24 hours. Unparseable clock values yield 0 rather than failing
// the surrounding aggregation.
func WorkedHours(s Shift, closingTime string, now time.Time) float64 {
	startMinutes, err := ClockMinutes(s.StartTime)
	if err != nil {
		return 0
	}

	var endMinutes int
	switch {
	case s.EndTime != nil && *s.EndTime != "":
		endMinutes, err = ClockMinutes(*s.EndTime)
		if err != nil {
			return 0
		}
	case sameDay(s.Date, now):
		endMinutes = now.Hour()*60 + now.Minute()
	default:
		if closingTime == "" {
			closingTime = "05:00"
		}
		endMinutes, err = ClockMinutes(closingTime)
		if err != nil {
			return 0
		}
	}

	if endMinutes <= startMinutes {
		endMinutes += 24 * 60
	}
	return float64(endMinutes-startMinutes) / 60
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
