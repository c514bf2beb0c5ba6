package report

import (
	"testing"

	"clubpos/internal/domain/cast"
)

func TestComputeWageWorkedExample(t *testing.T) {
	c := &cast.Cast{ID: "c1", Name: "Misaki", HourlyWage: 3000, IsActive: true}
	perf := CastPerformance{
		CastID:           "c1",
		WorkHours:        5,
		ShimeiCount:      2,
		DouhanBackIncome: 1500,
	}

	wage := ComputeWage(perf, c)
	if wage != 18500 {
		t.Fatalf("expected wage 18500, got %v", wage)
	}
}

func TestComputeWageZeroActivity(t *testing.T) {
	c := &cast.Cast{ID: "c1", HourlyWage: 3000}
	if wage := ComputeWage(CastPerformance{CastID: "c1"}, c); wage != 0 {
		t.Fatalf("expected zero wage for zero activity, got %v", wage)
	}
}

func TestComputeWageMissingCast(t *testing.T) {
	perf := CastPerformance{CastID: "ghost", WorkHours: 8, ShimeiCount: 3, DouhanBackIncome: 4500}
	if wage := ComputeWage(perf, nil); wage != 0 {
		t.Fatalf("expected zero wage for missing cast, got %v", wage)
	}
}
