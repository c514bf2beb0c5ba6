package report

import (
	"fmt"
	"sort"
	"time"
)

// SalesPoint is one bucket of the dashboard sales series.
type SalesPoint struct {
	Label         string  `json:"label"`
	Sales         float64 `json:"sales"`
	CustomerCount int     `json:"customerCount"`
	Profit        float64 `json:"profit"`
}

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// SalesSeries buckets saved daily reports by period for charting. Weekly
// buckets are labelled by ISO week, monthly by year-month. Unknown
// periods fall back to daily.
func SalesSeries(reports []DailyReport, period string) []SalesPoint {
	buckets := make(map[string]*SalesPoint)
	for _, r := range reports {
		label := bucketLabel(r.Date, period)
		pt, ok := buckets[label]
		if !ok {
			pt = &SalesPoint{Label: label}
			buckets[label] = pt
		}
		pt.Sales += r.TotalSales
		pt.CustomerCount += r.CustomerCount
		pt.Profit += r.Profit
	}

	series := make([]SalesPoint, 0, len(buckets))
	for _, pt := range buckets {
		series = append(series, *pt)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Label < series[j].Label })
	return series
}

func bucketLabel(date time.Time, period string) string {
	switch period {
	case PeriodWeekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case PeriodMonthly:
		return date.Format("2006-01")
	default:
		return date.Format("2006-01-02")
	}
}
