package report

import (
	"context"
	"errors"
	"time"

	"clubpos/internal/domain/cast"
	"clubpos/internal/domain/order"
	"clubpos/internal/domain/settings"
	"clubpos/internal/domain/shift"
)

// Service builds, saves and locks daily reports and derives the
// monthly views from the closed set.
type Service struct {
	Reports  *Store
	Orders   *order.Store
	Shifts   *shift.Store
	Casts    *cast.Store
	Settings *settings.Store
}

func NewService(reports *Store, orders *order.Store, shifts *shift.Store, casts *cast.Store, settingsStore *settings.Store) *Service {
	return &Service{Reports: reports, Orders: orders, Shifts: shifts, Casts: casts, Settings: settingsStore}
}

// Preview returns the report to display for a date: the stored copy if
// the day is closed, otherwise a fresh build over the day's current
// orders and shifts.
func (s *Service) Preview(ctx context.Context, date time.Time) (*DailyReport, error) {
	stored, err := s.Reports.Get(ctx, date)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if stored != nil && stored.IsClosed {
		return stored, nil
	}
	return s.build(ctx, date)
}

// Save rebuilds and stores the date's report, leaving it open for
// further refreshes. A closed day rejects the save unchanged.
func (s *Service) Save(ctx context.Context, date time.Time) (*DailyReport, error) {
	if err := s.ensureOpen(ctx, date); err != nil {
		return nil, err
	}
	built, err := s.build(ctx, date)
	if err != nil {
		return nil, err
	}
	if err := s.Reports.Upsert(ctx, *built); err != nil {
		return nil, err
	}
	return built, nil
}

// Close performs the day's closing: a final rebuild stored with the
// closed flag set. Once closed the report is immutable.
func (s *Service) Close(ctx context.Context, date time.Time) (*DailyReport, error) {
	if err := s.ensureOpen(ctx, date); err != nil {
		return nil, err
	}
	built, err := s.build(ctx, date)
	if err != nil {
		return nil, err
	}
	built.IsClosed = true
	if err := s.Reports.Upsert(ctx, *built); err != nil {
		return nil, err
	}
	return built, nil
}

// Monthly folds the month's closed reports into the monthly view. It
// is computed on demand and never stored.
func (s *Service) Monthly(ctx context.Context, year, month int) (*MonthlyReport, error) {
	closed, err := s.Reports.ListClosedByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	casts, err := s.Casts.List(ctx)
	if err != nil {
		return nil, err
	}
	m := BuildMonthly(year, month, closed, casts)
	return &m, nil
}

// Series returns the sales chart series over saved reports in a range.
func (s *Service) Series(ctx context.Context, from, to time.Time, period string) ([]SalesPoint, error) {
	reports, err := s.Reports.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return SalesSeries(reports, period), nil
}

// CastNames maps cast ids to display names for exports.
func (s *Service) CastNames(ctx context.Context) (map[string]string, error) {
	casts, err := s.Casts.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(casts))
	for _, c := range casts {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (s *Service) ensureOpen(ctx context.Context, date time.Time) error {
	stored, err := s.Reports.Get(ctx, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if stored.IsClosed {
		return ErrClosed
	}
	return nil
}

func (s *Service) build(ctx context.Context, date time.Time) (*DailyReport, error) {
	orders, err := s.Orders.ListCompletedByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	shifts, err := s.Shifts.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	casts, err := s.Casts.List(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	r := BuildDaily(date, orders, shifts, casts, cfg.CloseTime, time.Now())
	return &r, nil
}
