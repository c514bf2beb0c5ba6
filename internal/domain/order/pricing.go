package order

import (
	"math"
	"time"

	"clubpos/internal/domain/settings"
)

// BilledHours converts an order's elapsed time into billable hours: a
// fresh order is billed one hour minimum, and any started hour counts in
// full (61 minutes bills 2 hours).
func BilledHours(start, now time.Time) (elapsedMinutes, hours int) {
	elapsedMinutes = int(math.Floor(now.Sub(start).Minutes()))
	if elapsedMinutes < 0 {
		elapsedMinutes = 0
	}
	hours = (elapsedMinutes + 59) / 60
	if hours < 1 {
		hours = 1
	}
	return elapsedMinutes, hours
}

// ComputeTotals prices an order from its lines, guest roster, and elapsed
// time. It is pure and idempotent: calling it any number of times on an
// unchanged active order yields identical totals, and intermediates stay
// unrounded so repeated recomputation cannot compound rounding error.
// Only the per-guest douhan back amount is rounded, because it is
// committed to a cast the moment it is emitted.
func ComputeTotals(lines []Line, guests []Guest, start, now time.Time, s settings.StoreSettings) Totals {
	var t Totals

	for _, line := range lines {
		t.ItemsTotal += line.UnitPrice * float64(line.Quantity)
	}

	t.ElapsedMinutes, t.BilledHours = BilledHours(start, now)
	t.SetFeeTotal = float64(t.BilledHours) * s.HourlySetFee

	douhanCount := 0
	t.DouhanBacks = []DouhanBack{}
	for _, guest := range guests {
		if !guest.IsDouhan {
			continue
		}
		douhanCount++
		if guest.ShimeiCastID != "" {
			t.DouhanBacks = append(t.DouhanBacks, DouhanBack{
				CastID: guest.ShimeiCastID,
				Amount: math.Round(s.DouhanFee * s.DouhanBackRate),
			})
		}
	}
	t.DouhanTotal = float64(douhanCount) * s.DouhanFee

	subtotal := t.ItemsTotal + t.SetFeeTotal + t.DouhanTotal
	t.ServiceFee = subtotal * s.ServiceFeeRate
	t.Tax = (subtotal + t.ServiceFee) * s.TaxRate
	t.Total = subtotal + t.ServiceFee + t.Tax
	return t
}

// AddLine increments the line keyed by (menuItemID, backCastID) or
// appends a new one with the given price snapshot.
func AddLine(lines []Line, menuItemID string, unitPrice float64, backCastID string) []Line {
	for i, line := range lines {
		if line.MenuItemID == menuItemID && line.BackCastID == backCastID {
			lines[i].Quantity++
			return lines
		}
	}
	return append(lines, Line{
		MenuItemID: menuItemID,
		Quantity:   1,
		UnitPrice:  unitPrice,
		BackCastID: backCastID,
	})
}

// RemoveLine decrements the line keyed by (menuItemID, backCastID),
// dropping it once the quantity reaches zero.
func RemoveLine(lines []Line, menuItemID, backCastID string) []Line {
	result := lines[:0]
	for _, line := range lines {
		if line.MenuItemID == menuItemID && line.BackCastID == backCastID {
			line.Quantity--
		}
		if line.Quantity > 0 {
			result = append(result, line)
		}
	}
	return result
}
