package order

import (
	"math"
	"testing"
	"time"

	"clubpos/internal/domain/settings"
)

func testSettings() settings.StoreSettings {
	return settings.StoreSettings{
		HourlySetFee:   5000,
		DouhanFee:      3000,
		DouhanBackRate: 0.5,
		ServiceFeeRate: 0.1,
		TaxRate:        0.1,
		OpenTime:       "20:00",
		CloseTime:      "05:00",
	}
}

func TestBilledHoursBoundaries(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)

	cases := []struct {
		minutes int
		hours   int
	}{
		{0, 1},
		{1, 1},
		{59, 1},
		{60, 1},
		{61, 2},
		{119, 2},
		{120, 2},
		{121, 3},
	}
	for _, tc := range cases {
		now := start.Add(time.Duration(tc.minutes) * time.Minute)
		elapsed, hours := BilledHours(start, now)
		if elapsed != tc.minutes {
			t.Fatalf("%d minutes: expected elapsed %d, got %d", tc.minutes, tc.minutes, elapsed)
		}
		if hours != tc.hours {
			t.Fatalf("%d minutes: expected %d billed hours, got %d", tc.minutes, tc.hours, hours)
		}
	}
}

func TestBilledHoursMonotonic(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)
	previous := 0
	for minutes := 0; minutes <= 360; minutes++ {
		_, hours := BilledHours(start, start.Add(time.Duration(minutes)*time.Minute))
		if hours < 1 {
			t.Fatalf("billed hours below 1 at %d minutes", minutes)
		}
		if hours < previous {
			t.Fatalf("billed hours decreased at %d minutes", minutes)
		}
		previous = hours
	}
}

// Worked example: items 2400, 3 billed hours at 5000, one companion
// guest nominating cast X at the default rates.
func TestComputeTotalsWorkedExample(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)
	now := start.Add(2*time.Hour + 30*time.Minute)

	lines := []Line{
		{MenuItemID: "m1", Quantity: 2, UnitPrice: 700},
		{MenuItemID: "m2", Quantity: 1, UnitPrice: 1000},
	}
	guests := []Guest{
		{Name: "Tanaka", ShimeiCastID: "cast-x", IsDouhan: true},
		{Name: ""},
	}

	totals := ComputeTotals(lines, guests, start, now, testSettings())

	if totals.ItemsTotal != 2400 {
		t.Fatalf("expected items total 2400, got %v", totals.ItemsTotal)
	}
	if totals.BilledHours != 3 {
		t.Fatalf("expected 3 billed hours, got %d", totals.BilledHours)
	}
	if totals.SetFeeTotal != 15000 {
		t.Fatalf("expected set fee 15000, got %v", totals.SetFeeTotal)
	}
	if totals.DouhanTotal != 3000 {
		t.Fatalf("expected douhan total 3000, got %v", totals.DouhanTotal)
	}
	if totals.ServiceFee != 2040 {
		t.Fatalf("expected service fee 2040, got %v", totals.ServiceFee)
	}
	if totals.Tax != 2244 {
		t.Fatalf("expected tax 2244, got %v", totals.Tax)
	}
	if totals.Total != 24684 {
		t.Fatalf("expected total 24684, got %v", totals.Total)
	}
	if len(totals.DouhanBacks) != 1 {
		t.Fatalf("expected 1 douhan back, got %d", len(totals.DouhanBacks))
	}
	if back := totals.DouhanBacks[0]; back.CastID != "cast-x" || back.Amount != 1500 {
		t.Fatalf("expected 1500 back to cast-x, got %+v", back)
	}
}

func TestComputeTotalsComposition(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)
	now := start.Add(95 * time.Minute)
	lines := []Line{{MenuItemID: "m1", Quantity: 3, UnitPrice: 333}}
	guests := []Guest{{Name: "A", IsDouhan: true}, {Name: "B"}}

	totals := ComputeTotals(lines, guests, start, now, testSettings())

	sum := totals.ItemsTotal + totals.SetFeeTotal + totals.DouhanTotal + totals.ServiceFee + totals.Tax
	if math.Abs(totals.Total-sum) > 1e-9 {
		t.Fatalf("total %v does not equal component sum %v", totals.Total, sum)
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)
	now := start.Add(3 * time.Hour)
	lines := []Line{{MenuItemID: "m1", Quantity: 2, UnitPrice: 1200, BackCastID: "cast-a"}}
	guests := []Guest{{Name: "Sato", ShimeiCastID: "cast-a", IsDouhan: true}}

	first := ComputeTotals(lines, guests, start, now, testSettings())
	for i := 0; i < 10; i++ {
		again := ComputeTotals(lines, guests, start, now, testSettings())
		if again.Total != first.Total || again.Tax != first.Tax || again.ServiceFee != first.ServiceFee {
			t.Fatalf("recompute %d diverged: %+v vs %+v", i, again, first)
		}
	}
}

// Multiple companion guests nominating the same cast each generate an
// independent back entry.
func TestComputeTotalsPerGuestBacksNotDeduplicated(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)
	guests := []Guest{
		{Name: "A", ShimeiCastID: "cast-x", IsDouhan: true},
		{Name: "B", ShimeiCastID: "cast-x", IsDouhan: true},
		{Name: "C", ShimeiCastID: "cast-y", IsDouhan: true},
		{Name: "D", IsDouhan: true},
		{Name: "E", ShimeiCastID: "cast-z"},
	}

	totals := ComputeTotals(nil, guests, start, start, testSettings())

	if totals.DouhanTotal != 4*3000 {
		t.Fatalf("expected douhan total 12000, got %v", totals.DouhanTotal)
	}
	if len(totals.DouhanBacks) != 3 {
		t.Fatalf("expected 3 back entries, got %d", len(totals.DouhanBacks))
	}
	countX := 0
	for _, back := range totals.DouhanBacks {
		if back.Amount != 1500 {
			t.Fatalf("expected 1500 per back, got %v", back.Amount)
		}
		if back.CastID == "cast-x" {
			countX++
		}
	}
	if countX != 2 {
		t.Fatalf("expected 2 backs for cast-x, got %d", countX)
	}
}

// The set fee is charged regardless of consumption; an empty order still
// bills one hour.
func TestComputeTotalsEmptyOrderStillBillsSetFee(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)

	totals := ComputeTotals(nil, nil, start, start, testSettings())

	if totals.ItemsTotal != 0 || totals.DouhanTotal != 0 {
		t.Fatalf("expected zero items and douhan, got %+v", totals)
	}
	if totals.SetFeeTotal != 5000 {
		t.Fatalf("expected minimum one-hour set fee, got %v", totals.SetFeeTotal)
	}
}

func TestComputeTotalsZeroRateSettings(t *testing.T) {
	start := time.Date(2025, 3, 10, 20, 0, 0, 0, time.Local)
	s := settings.Defaults()
	lines := []Line{{MenuItemID: "m1", Quantity: 1, UnitPrice: 1000}}

	totals := ComputeTotals(lines, nil, start, start, s)

	// Defaults carry no set fee, no service fee, no tax.
	if totals.Total != 1000 {
		t.Fatalf("expected total 1000 under default settings, got %v", totals.Total)
	}
}

func TestAddAndRemoveLine(t *testing.T) {
	var lines []Line
	lines = AddLine(lines, "m1", 700, "")
	lines = AddLine(lines, "m1", 700, "")
	lines = AddLine(lines, "m1", 700, "cast-a")
	lines = AddLine(lines, "m2", 1000, "")

	if len(lines) != 3 {
		t.Fatalf("expected 3 distinct lines, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected merged quantity 2, got %d", lines[0].Quantity)
	}

	lines = RemoveLine(lines, "m1", "")
	lines = RemoveLine(lines, "m1", "")
	if len(lines) != 2 {
		t.Fatalf("expected line dropped at zero quantity, got %d lines", len(lines))
	}
	for _, line := range lines {
		if line.MenuItemID == "m1" && line.BackCastID == "" {
			t.Fatal("zero-quantity line still present")
		}
	}
}

// The price snapshot on a line survives later changes to the menu price:
// adding more of the same item keyed to the same cast keeps the stored
// unit price.
func TestAddLineKeepsPriceSnapshot(t *testing.T) {
	lines := AddLine(nil, "m1", 700, "")
	lines = AddLine(lines, "m1", 900, "")

	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
	if lines[0].UnitPrice != 700 {
		t.Fatalf("expected frozen unit price 700, got %v", lines[0].UnitPrice)
	}
}
