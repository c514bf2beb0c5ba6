package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const reportColumns = `report_date, total_sales, customer_count, average_spend, total_wages, profit, cast_performance, is_closed`

// Get loads the saved report for a calendar date.
func (s *Store) Get(ctx context.Context, date time.Time) (*DailyReport, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+reportColumns+` FROM daily_reports WHERE report_date = $1`,
		date.Format("2006-01-02"))
	r, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get daily report: %w", err)
	}
	return r, nil
}

// Upsert writes the report for its date, replacing any previous save.
func (s *Store) Upsert(ctx context.Context, r DailyReport) error {
	perf, err := json.Marshal(r.CastPerformance)
	if err != nil {
		return fmt.Errorf("marshal cast performance: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO daily_reports (report_date, total_sales, customer_count, average_spend, total_wages, profit, cast_performance, is_closed, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (report_date) DO UPDATE SET
			total_sales = EXCLUDED.total_sales,
			customer_count = EXCLUDED.customer_count,
			average_spend = EXCLUDED.average_spend,
			total_wages = EXCLUDED.total_wages,
			profit = EXCLUDED.profit,
			cast_performance = EXCLUDED.cast_performance,
			is_closed = EXCLUDED.is_closed,
			updated_at = now()`,
		r.Date.Format("2006-01-02"), r.TotalSales, r.CustomerCount, r.AverageSpend,
		r.TotalWages, r.Profit, perf, r.IsClosed)
	if err != nil {
		return fmt.Errorf("upsert daily report: %w", err)
	}
	return nil
}

// ListClosedByMonth returns the month's closed reports in date order.
func (s *Store) ListClosedByMonth(ctx context.Context, year, month int) ([]DailyReport, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	next := first.AddDate(0, 1, 0)
	rows, err := s.pool.Query(ctx,
		`SELECT `+reportColumns+` FROM daily_reports
		 WHERE is_closed AND report_date >= $1 AND report_date < $2
		 ORDER BY report_date`,
		first.Format("2006-01-02"), next.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list closed reports: %w", err)
	}
	defer rows.Close()
	return collectReports(rows)
}

// ListRange returns saved reports, closed or not, between from and to
// inclusive, in date order.
func (s *Store) ListRange(ctx context.Context, from, to time.Time) ([]DailyReport, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+reportColumns+` FROM daily_reports
		 WHERE report_date >= $1 AND report_date <= $2
		 ORDER BY report_date`,
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	return collectReports(rows)
}

func collectReports(rows pgx.Rows) ([]DailyReport, error) {
	reports := []DailyReport{}
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily report: %w", err)
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}

func scanReport(row pgx.Row) (*DailyReport, error) {
	var r DailyReport
	var perf []byte
	if err := row.Scan(&r.Date, &r.TotalSales, &r.CustomerCount, &r.AverageSpend,
		&r.TotalWages, &r.Profit, &perf, &r.IsClosed); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(perf, &r.CastPerformance); err != nil {
		return nil, fmt.Errorf("unmarshal cast performance: %w", err)
	}
	return &r, nil
}
