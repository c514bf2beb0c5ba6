package report

import (
	"fmt"
	"math"
	"strconv"
)

// FormatYen renders an amount the way the register prints it: rounded
// to whole yen with thousands separators.
func FormatYen(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return "¥" + sign + s
}

// DailyCSVRows lays out one day's report as CSV records: a summary
// section, a blank spacer, then the per-cast performance table. Cast
// ids missing from names render as "unknown".
func DailyCSVRows(r DailyReport, names map[string]string) [][]string {
	rows := [][]string{
		{"Date", r.Date.Format("2006-01-02")},
		{"Total Sales", FormatYen(r.TotalSales)},
		{"Customers", strconv.Itoa(r.CustomerCount)},
		{"Average Spend", FormatYen(r.AverageSpend)},
		{"Total Wages", FormatYen(r.TotalWages)},
		{"Profit", FormatYen(r.Profit)},
		{},
		{"Cast", "Hours", "Sales", "Shimei", "Douhan", "Douhan Back", "Wage"},
	}
	for _, perf := range r.CastPerformance {
		name, ok := names[perf.CastID]
		if !ok {
			name = "unknown"
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%.1f", perf.WorkHours),
			FormatYen(perf.Sales),
			strconv.Itoa(perf.ShimeiCount),
			strconv.Itoa(perf.DouhanCount),
			FormatYen(perf.DouhanBackIncome),
			FormatYen(perf.CalculatedWage),
		})
	}
	return rows
}

// MonthlyCSVRows lays out a monthly report: summary, cast rollup, then
// the day-by-day breakdown, separated by blank records.
func MonthlyCSVRows(m MonthlyReport) [][]string {
	rows := [][]string{
		{"Period", fmt.Sprintf("%04d-%02d", m.Summary.Year, m.Summary.Month)},
		{"Working Days", strconv.Itoa(m.Summary.WorkingDays)},
		{"Total Sales", FormatYen(m.Summary.TotalSales)},
		{"Total Wages", FormatYen(m.Summary.TotalWages)},
		{"Total Profit", FormatYen(m.Summary.TotalProfit)},
		{"Customers", strconv.Itoa(m.Summary.TotalCustomers)},
		{"Average Spend", FormatYen(m.Summary.AverageSpend)},
		{},
		{"Cast", "Days", "Hours", "Avg Hours", "Sales", "Shimei", "Douhan", "Douhan Back", "Wage"},
	}
	for _, perf := range m.CastPerformance {
		rows = append(rows, []string{
			perf.CastName,
			strconv.Itoa(perf.WorkingDays),
			fmt.Sprintf("%.1f", perf.TotalWorkHours),
			fmt.Sprintf("%.1f", perf.AverageWorkHours),
			FormatYen(perf.TotalSales),
			strconv.Itoa(perf.TotalShimeiCount),
			strconv.Itoa(perf.TotalDouhanCount),
			FormatYen(perf.TotalDouhanBackIncome),
			FormatYen(perf.TotalWage),
		})
	}
	rows = append(rows, []string{}, []string{"Date", "Sales", "Customers", "Wages", "Profit"})
	for _, d := range m.Daily {
		rows = append(rows, []string{
			d.Date.Format("2006-01-02"),
			FormatYen(d.TotalSales),
			strconv.Itoa(d.CustomerCount),
			FormatYen(d.TotalWages),
			FormatYen(d.Profit),
		})
	}
	return rows
}
