package report

import (
	"testing"
	"time"
)

func TestSalesSeriesDailyBuckets(t *testing.T) {
	reports := []DailyReport{
		{Date: day(2026, time.March, 15), TotalSales: 40000, CustomerCount: 5, Profit: 18000},
		{Date: day(2026, time.March, 14), TotalSales: 24684, CustomerCount: 2, Profit: 6184},
	}

	series := SalesSeries(reports, PeriodDaily)
	if len(series) != 2 {
		t.Fatalf("points = %d, want 2", len(series))
	}
	if series[0].Label != "2026-03-14" || series[1].Label != "2026-03-15" {
		t.Errorf("labels = %s, %s; want chronological", series[0].Label, series[1].Label)
	}
	if series[0].Sales != 24684 || series[0].CustomerCount != 2 {
		t.Errorf("first point = %+v", series[0])
	}
}

func TestSalesSeriesMonthlyBuckets(t *testing.T) {
	reports := []DailyReport{
		{Date: day(2026, time.March, 14), TotalSales: 10000, CustomerCount: 1},
		{Date: day(2026, time.March, 20), TotalSales: 20000, CustomerCount: 2},
		{Date: day(2026, time.April, 1), TotalSales: 5000, CustomerCount: 1},
	}

	series := SalesSeries(reports, PeriodMonthly)
	if len(series) != 2 {
		t.Fatalf("points = %d, want 2", len(series))
	}
	if series[0].Label != "2026-03" || series[0].Sales != 30000 || series[0].CustomerCount != 3 {
		t.Errorf("march point = %+v", series[0])
	}
	if series[1].Label != "2026-04" || series[1].Sales != 5000 {
		t.Errorf("april point = %+v", series[1])
	}
}

func TestSalesSeriesWeeklyBuckets(t *testing.T) {
	// 2026-03-14 (Sat) and 2026-03-15 (Sun) share ISO week 11;
	// 2026-03-16 (Mon) starts week 12.
	reports := []DailyReport{
		{Date: day(2026, time.March, 14), TotalSales: 100},
		{Date: day(2026, time.March, 15), TotalSales: 200},
		{Date: day(2026, time.March, 16), TotalSales: 400},
	}

	series := SalesSeries(reports, PeriodWeekly)
	if len(series) != 2 {
		t.Fatalf("points = %d, want 2", len(series))
	}
	if series[0].Sales != 300 || series[1].Sales != 400 {
		t.Errorf("weekly sums = %v, %v; want 300, 400", series[0].Sales, series[1].Sales)
	}
}
