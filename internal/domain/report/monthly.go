package report

import (
	"sort"

	"clubpos/internal/domain/cast"
)

// BuildMonthly folds a month's closed daily reports into month totals
// and per-cast rollups. Callers must only pass closed reports; open
// reports are provisional and never contribute. The fold is pure and
// fully recomputable from the closed-report set.
func BuildMonthly(year, month int, closed []DailyReport, casts []cast.Cast) MonthlyReport {
	m := MonthlyReport{
		Summary: MonthlySummary{Year: year, Month: month},
		Daily:   closed,
	}

	for _, r := range closed {
		m.Summary.WorkingDays++
		m.Summary.TotalSales += r.TotalSales
		m.Summary.TotalWages += r.TotalWages
		m.Summary.TotalProfit += r.Profit
		m.Summary.TotalCustomers += r.CustomerCount
	}
	if m.Summary.TotalCustomers > 0 {
		m.Summary.AverageSpend = m.Summary.TotalSales / float64(m.Summary.TotalCustomers)
	}

	byCast := make(map[string]*MonthlyCastPerformance, len(casts))
	ordered := make([]*MonthlyCastPerformance, 0, len(casts))
	for _, c := range casts {
		entry := &MonthlyCastPerformance{CastID: c.ID, CastName: c.Name}
		byCast[c.ID] = entry
		ordered = append(ordered, entry)
	}

	for _, r := range closed {
		for _, perf := range r.CastPerformance {
			entry, known := byCast[perf.CastID]
			if !known {
				// Cast removed since the report closed; keep the row
				// so historical pay stays visible.
				entry = &MonthlyCastPerformance{CastID: perf.CastID, CastName: "unknown"}
				byCast[perf.CastID] = entry
				ordered = append(ordered, entry)
			}
			entry.TotalWorkHours += perf.WorkHours
			entry.TotalSales += perf.Sales
			entry.TotalShimeiCount += perf.ShimeiCount
			entry.TotalDouhanCount += perf.DouhanCount
			entry.TotalDouhanBackIncome += perf.DouhanBackIncome
			entry.TotalWage += perf.CalculatedWage
			if perf.WorkHours > 0 {
				entry.WorkingDays++
			}
		}
	}

	m.CastPerformance = make([]MonthlyCastPerformance, 0, len(ordered))
	for _, entry := range ordered {
		if entry.WorkingDays > 0 {
			entry.AverageWorkHours = entry.TotalWorkHours / float64(entry.WorkingDays)
		}
		m.CastPerformance = append(m.CastPerformance, *entry)
	}
	sort.SliceStable(m.CastPerformance, func(i, j int) bool {
		return m.CastPerformance[i].TotalSales > m.CastPerformance[j].TotalSales
	})
	return m
}
