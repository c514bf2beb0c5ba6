package report

import (
	"testing"
	"time"
)

func TestFormatYen(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "¥0"},
		{500, "¥500"},
		{24684, "¥24,684"},
		{1234567, "¥1,234,567"},
		{2243.5, "¥2,244"},
		{-5000, "¥-5,000"},
	}
	for _, tc := range cases {
		if got := FormatYen(tc.amount); got != tc.want {
			t.Errorf("FormatYen(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestDailyCSVRows(t *testing.T) {
	r := DailyReport{
		Date:          day(2026, time.March, 14),
		TotalSales:    24684,
		CustomerCount: 2,
		AverageSpend:  12342,
		TotalWages:    18500,
		Profit:        6184,
		CastPerformance: []CastPerformance{
			{CastID: "misaki", WorkHours: 5, Sales: 24684, ShimeiCount: 2, DouhanCount: 1, DouhanBackIncome: 1500, CalculatedWage: 18500},
			{CastID: "gone", WorkHours: 2, CalculatedWage: 4000},
		},
	}

	rows := DailyCSVRows(r, map[string]string{"misaki": "Misaki"})
	if rows[0][1] != "2026-03-14" {
		t.Errorf("date cell = %q", rows[0][1])
	}
	if rows[1][1] != "¥24,684" {
		t.Errorf("sales cell = %q", rows[1][1])
	}
	if len(rows[6]) != 0 {
		t.Errorf("expected blank spacer before cast table, got %v", rows[6])
	}

	misaki := rows[8]
	if misaki[0] != "Misaki" || misaki[1] != "5.0" || misaki[6] != "¥18,500" {
		t.Errorf("cast row = %v", misaki)
	}
	if rows[9][0] != "unknown" {
		t.Errorf("missing cast label = %q, want unknown", rows[9][0])
	}
}

func TestMonthlyCSVRowsSections(t *testing.T) {
	m := MonthlyReport{
		Summary: MonthlySummary{Year: 2026, Month: 3, WorkingDays: 2, TotalSales: 64684, TotalWages: 40500, TotalProfit: 24184, TotalCustomers: 7, AverageSpend: 64684.0 / 7},
		CastPerformance: []MonthlyCastPerformance{
			{CastID: "misaki", CastName: "Misaki", WorkingDays: 2, TotalWorkHours: 9, AverageWorkHours: 4.5, TotalSales: 34684, TotalShimeiCount: 3, TotalDouhanCount: 1, TotalDouhanBackIncome: 1500, TotalWage: 31500},
		},
		Daily: []DailyReport{
			{Date: day(2026, time.March, 14), TotalSales: 24684, CustomerCount: 2, TotalWages: 18500, Profit: 6184},
		},
	}

	rows := MonthlyCSVRows(m)
	if rows[0][1] != "2026-03" {
		t.Errorf("period cell = %q", rows[0][1])
	}
	if rows[2][1] != "¥64,684" {
		t.Errorf("total sales cell = %q", rows[2][1])
	}

	castRow := rows[9]
	if castRow[0] != "Misaki" || castRow[3] != "4.5" || castRow[8] != "¥31,500" {
		t.Errorf("cast row = %v", castRow)
	}

	dailyRow := rows[len(rows)-1]
	if dailyRow[0] != "2026-03-14" || dailyRow[1] != "¥24,684" {
		t.Errorf("daily row = %v", dailyRow)
	}
}
