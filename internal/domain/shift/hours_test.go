package shift

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestClockMinutes(t *testing.T) {
	minutes, err := ClockMinutes("20:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if minutes != 20*60+30 {
		t.Fatalf("expected 1230, got %d", minutes)
	}

	for _, bad := range []string{"", "20", "24:00", "19:60", "aa:bb"} {
		if _, err := ClockMinutes(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestWorkedHoursWithEndTime(t *testing.T) {
	s := Shift{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: "20:00",
		EndTime:   strPtr("23:30"),
	}
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	hours := WorkedHours(s, "05:00", now)
	if hours != 3.5 {
		t.Fatalf("expected 3.5 hours, got %v", hours)
	}
}

func TestWorkedHoursOvernight(t *testing.T) {
	s := Shift{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: "21:00",
		EndTime:   strPtr("03:00"),
	}
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	hours := WorkedHours(s, "05:00", now)
	if hours != 6 {
		t.Fatalf("expected 6 hours for overnight shift, got %v", hours)
	}
}

func TestWorkedHoursOngoingToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 0, 0, 0, time.Local)
	s := Shift{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: "20:00",
	}

	hours := WorkedHours(s, "05:00", now)
	if hours != 3 {
		t.Fatalf("expected 3 hours up to now, got %v", hours)
	}
}

func TestWorkedHoursOpenEndedPastDateUsesClosingTime(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	s := Shift{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: "20:00",
	}

	// 20:00 through 05:00 next day is 9 hours.
	hours := WorkedHours(s, "05:00", now)
	if hours != 9 {
		t.Fatalf("expected 9 hours to closing time, got %v", hours)
	}
}

func TestWorkedHoursBadStartYieldsZero(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	s := Shift{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: "bogus",
	}

	if hours := WorkedHours(s, "05:00", now); hours != 0 {
		t.Fatalf("expected 0 hours for bad start, got %v", hours)
	}
}
