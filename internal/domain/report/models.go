package report

import "time"

// CastPerformance is one cast member's derived figures for a single day.
// Regenerable until the owning report is closed.
type CastPerformance struct {
	CastID           string  `json:"castId"`
	WorkHours        float64 `json:"workHours"`
	Sales            float64 `json:"sales"`
	ShimeiCount      int     `json:"shimeiCount"`
	DouhanCount      int     `json:"douhanCount"`
	DouhanBackIncome float64 `json:"douhanBackIncome"`
	CalculatedWage   float64 `json:"calculatedWage"`
}

// DailyReport is the per-date ledger. While open it can be rebuilt at
// will; once IsClosed it is immutable and becomes the sole input to
// monthly aggregation.
type DailyReport struct {
	Date            time.Time         `json:"date"`
	TotalSales      float64           `json:"totalSales"`
	CustomerCount   int               `json:"customerCount"`
	AverageSpend    float64           `json:"averageSpend"`
	TotalWages      float64           `json:"totalWages"`
	Profit          float64           `json:"profit"`
	CastPerformance []CastPerformance `json:"castPerformance"`
	IsClosed        bool              `json:"isClosed"`
}

type MonthlySummary struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	WorkingDays    int     `json:"workingDays"`
	TotalSales     float64 `json:"totalSales"`
	TotalWages     float64 `json:"totalWages"`
	TotalProfit    float64 `json:"totalProfit"`
	TotalCustomers int     `json:"totalCustomers"`
	AverageSpend   float64 `json:"averageSpend"`
}

type MonthlyCastPerformance struct {
	CastID                string  `json:"castId"`
	CastName              string  `json:"castName"`
	WorkingDays           int     `json:"workingDays"`
	TotalWorkHours        float64 `json:"totalWorkHours"`
	AverageWorkHours      float64 `json:"averageWorkHours"`
	TotalSales            float64 `json:"totalSales"`
	TotalShimeiCount      int     `json:"totalShimeiCount"`
	TotalDouhanCount      int     `json:"totalDouhanCount"`
	TotalDouhanBackIncome float64 `json:"totalDouhanBackIncome"`
	TotalWage             float64 `json:"totalWage"`
}

// MonthlyReport is never stored; it is recomputed from the month's
// closed daily reports on every request.
type MonthlyReport struct {
	Summary         MonthlySummary           `json:"summary"`
	CastPerformance []MonthlyCastPerformance `json:"castPerformance"`
	Daily           []DailyReport            `json:"daily"`
}
