package report

import (
	"time"

	"clubpos/internal/domain/cast"
	"clubpos/internal/domain/order"
	"clubpos/internal/domain/shift"
)

// BuildDaily aggregates one calendar day's completed orders and shifts
// into a report. It is pure: callers pass the day's data in and get a
// fresh report out, so an open report can be rebuilt any number of
// times with identical results for identical inputs.
//
// Casts without a shift row are day-offs and stay out of the
// performance table. Sales attribution credits the full order total to
// every cast nominated by at least one guest on that order; it is not
// split between casts.
func BuildDaily(date time.Time, orders []order.Order, shifts []shift.Shift, casts []cast.Cast, closingTime string, now time.Time) DailyReport {
	completed := orders[:0:0]
	for _, o := range orders {
		if o.Status == order.StatusCompleted {
			completed = append(completed, o)
		}
	}

	shiftByCast := make(map[string]shift.Shift, len(shifts))
	for _, sh := range shifts {
		shiftByCast[sh.CastID] = sh
	}

	r := DailyReport{
		Date:            time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local),
		CastPerformance: []CastPerformance{},
	}

	for _, c := range casts {
		if !c.IsActive {
			continue
		}
		sh, worked := shiftByCast[c.ID]
		if !worked {
			continue
		}

		perf := CastPerformance{
			CastID:    c.ID,
			WorkHours: shift.WorkedHours(sh, closingTime, now),
		}
		for _, o := range completed {
			nominated := false
			for _, guest := range o.Guests {
				if guest.ShimeiCastID != c.ID {
					continue
				}
				nominated = true
				perf.ShimeiCount++
				if guest.IsDouhan {
					perf.DouhanCount++
				}
			}
			if nominated {
				perf.Sales += o.Totals.Total
			}
			for _, back := range o.Totals.DouhanBacks {
				if back.CastID == c.ID {
					perf.DouhanBackIncome += back.Amount
				}
			}
		}

		castCopy := c
		perf.CalculatedWage = ComputeWage(perf, &castCopy)
		r.CastPerformance = append(r.CastPerformance, perf)
	}

	for _, o := range completed {
		r.TotalSales += o.Totals.Total
		r.CustomerCount += len(o.Guests)
	}
	for _, perf := range r.CastPerformance {
		r.TotalWages += perf.CalculatedWage
	}
	r.Profit = r.TotalSales - r.TotalWages
	if r.CustomerCount > 0 {
		r.AverageSpend = r.TotalSales / float64(r.CustomerCount)
	}
	return r
}
