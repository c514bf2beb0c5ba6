package report

import "clubpos/internal/domain/cast"

// ShimeiBonus is the fixed per-nomination bonus in yen. It is a house
// rule, not a store setting.
const ShimeiBonus = 1000

// ComputeWage turns one day's performance into pay: hourly wage for the
// hours worked, a flat bonus per nomination, and the douhan backs earned.
// A missing cast earns nothing.
func ComputeWage(perf CastPerformance, c *cast.Cast) float64 {
	if c == nil {
		return 0
	}
	return c.HourlyWage*perf.WorkHours + float64(perf.ShimeiCount)*ShimeiBonus + perf.DouhanBackIncome
}
