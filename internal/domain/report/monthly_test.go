package report

import (
	"testing"
	"time"

	"clubpos/internal/domain/cast"
)

func TestBuildMonthlySummaryFold(t *testing.T) {
	casts := []cast.Cast{
		{ID: "misaki", Name: "Misaki", HourlyWage: 3000, IsActive: true},
		{ID: "ai", Name: "Ai", HourlyWage: 2500, IsActive: true},
	}
	closed := []DailyReport{
		{
			Date: day(2026, time.March, 14), TotalSales: 24684, CustomerCount: 2,
			TotalWages: 18500, Profit: 6184, IsClosed: true,
			CastPerformance: []CastPerformance{
				{CastID: "misaki", WorkHours: 5, Sales: 24684, ShimeiCount: 2, DouhanCount: 1, DouhanBackIncome: 1500, CalculatedWage: 18500},
			},
		},
		{
			Date: day(2026, time.March, 15), TotalSales: 40000, CustomerCount: 5,
			TotalWages: 22000, Profit: 18000, IsClosed: true,
			CastPerformance: []CastPerformance{
				{CastID: "misaki", WorkHours: 4, Sales: 10000, ShimeiCount: 1, CalculatedWage: 13000},
				{CastID: "ai", WorkHours: 3, Sales: 30000, ShimeiCount: 2, DouhanCount: 1, DouhanBackIncome: 1500, CalculatedWage: 9000},
			},
		},
	}

	m := BuildMonthly(2026, 3, closed, casts)

	s := m.Summary
	if s.Year != 2026 || s.Month != 3 {
		t.Fatalf("period = %d-%d, want 2026-3", s.Year, s.Month)
	}
	if s.WorkingDays != 2 {
		t.Errorf("working days = %d, want 2", s.WorkingDays)
	}
	if s.TotalSales != 64684 || s.TotalWages != 40500 || s.TotalProfit != 24184 {
		t.Errorf("sales/wages/profit = %v/%v/%v, want 64684/40500/24184", s.TotalSales, s.TotalWages, s.TotalProfit)
	}
	if s.TotalCustomers != 7 {
		t.Errorf("customers = %d, want 7", s.TotalCustomers)
	}
	if want := 64684.0 / 7; s.AverageSpend != want {
		t.Errorf("average spend = %v, want %v", s.AverageSpend, want)
	}

	if len(m.CastPerformance) != 2 {
		t.Fatalf("cast rows = %d, want 2", len(m.CastPerformance))
	}
	// Sorted by total sales, descending.
	if m.CastPerformance[0].CastID != "misaki" || m.CastPerformance[1].CastID != "ai" {
		t.Fatalf("sort order = %s, %s; want misaki, ai", m.CastPerformance[0].CastID, m.CastPerformance[1].CastID)
	}

	misaki := m.CastPerformance[0]
	if misaki.CastName != "Misaki" {
		t.Errorf("cast name = %q, want Misaki", misaki.CastName)
	}
	if misaki.WorkingDays != 2 || misaki.TotalWorkHours != 9 {
		t.Errorf("days/hours = %d/%v, want 2/9", misaki.WorkingDays, misaki.TotalWorkHours)
	}
	if misaki.AverageWorkHours != 4.5 {
		t.Errorf("average hours = %v, want 4.5", misaki.AverageWorkHours)
	}
	if misaki.TotalSales != 34684 || misaki.TotalWage != 31500 {
		t.Errorf("sales/wage = %v/%v, want 34684/31500", misaki.TotalSales, misaki.TotalWage)
	}
	if misaki.TotalShimeiCount != 3 || misaki.TotalDouhanCount != 1 || misaki.TotalDouhanBackIncome != 1500 {
		t.Errorf("shimei/douhan/back = %d/%d/%v, want 3/1/1500", misaki.TotalShimeiCount, misaki.TotalDouhanCount, misaki.TotalDouhanBackIncome)
	}
}

func TestBuildMonthlyEmptyMonth(t *testing.T) {
	m := BuildMonthly(2026, 4, nil, []cast.Cast{{ID: "a", Name: "A"}})
	if m.Summary.WorkingDays != 0 || m.Summary.TotalSales != 0 || m.Summary.AverageSpend != 0 {
		t.Errorf("summary = %+v, want zeros", m.Summary)
	}
	if len(m.CastPerformance) != 1 {
		t.Fatalf("cast rows = %d, want 1", len(m.CastPerformance))
	}
	if m.CastPerformance[0].WorkingDays != 0 || m.CastPerformance[0].AverageWorkHours != 0 {
		t.Errorf("idle cast row = %+v, want zeros", m.CastPerformance[0])
	}
}

func TestBuildMonthlyKeepsRemovedCastRows(t *testing.T) {
	closed := []DailyReport{{
		Date: day(2026, time.March, 14), TotalSales: 5000, CustomerCount: 1,
		CastPerformance: []CastPerformance{
			{CastID: "gone", WorkHours: 4, Sales: 5000, CalculatedWage: 8000},
		},
	}}
	m := BuildMonthly(2026, 3, closed, nil)
	if len(m.CastPerformance) != 1 {
		t.Fatalf("cast rows = %d, want 1", len(m.CastPerformance))
	}
	row := m.CastPerformance[0]
	if row.CastID != "gone" || row.CastName != "unknown" {
		t.Errorf("row = %+v, want id gone with unknown name", row)
	}
	if row.TotalWage != 8000 {
		t.Errorf("wage = %v, want 8000", row.TotalWage)
	}
}
