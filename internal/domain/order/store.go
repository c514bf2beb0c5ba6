package order

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const orderColumns = `
  id, table_id, guests, notes, lines,
  items_total, set_fee_total, douhan_total, douhan_backs,
  service_fee, tax, total, elapsed_minutes, billed_hours, status, start_time, end_time
`

func (s *Store) Get(ctx context.Context, id string) (Order, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (s *Store) ListActive(ctx context.Context) ([]Order, error) {
	return s.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY start_time`, StatusActive)
}

func (s *Store) ListByTable(ctx context.Context, tableID string) ([]Order, error) {
	return s.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE table_id = $1 ORDER BY start_time`, tableID)
}

// ListCompletedByDate returns completed orders whose end time falls on
// the given local calendar day. Active and cancelled orders never show
// up in reporting.
func (s *Store) ListCompletedByDate(ctx context.Context, date time.Time) ([]Order, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)
	return s.list(ctx, `
    SELECT `+orderColumns+`
    FROM orders
    WHERE status = $1 AND end_time >= $2 AND end_time < $3
    ORDER BY end_time
  `, StatusCompleted, dayStart, dayEnd)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) Create(ctx context.Context, o Order) (Order, error) {
	o.ID = uuid.NewString()
	guests, lines, backs, err := marshalParts(o)
	if err != nil {
		return Order{}, err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO orders (id, table_id, guests, notes, lines,
      items_total, set_fee_total, douhan_total, douhan_backs,
      service_fee, tax, total, elapsed_minutes, billed_hours, status, start_time, end_time)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
  `, o.ID, o.TableID, guests, o.Notes, lines,
		o.Totals.ItemsTotal, o.Totals.SetFeeTotal, o.Totals.DouhanTotal, backs,
		o.Totals.ServiceFee, o.Totals.Tax, o.Totals.Total, o.Totals.ElapsedMinutes, o.Totals.BilledHours, o.Status, o.StartTime, o.EndTime)
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (s *Store) Update(ctx context.Context, o Order) error {
	guests, lines, backs, err := marshalParts(o)
	if err != nil {
		return err
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE orders
    SET guests = $2, notes = $3, lines = $4,
        items_total = $5, set_fee_total = $6, douhan_total = $7, douhan_backs = $8,
        service_fee = $9, tax = $10, total = $11, elapsed_minutes = $12, billed_hours = $13,
        status = $14, end_time = $15
    WHERE id = $1
  `, o.ID, guests, o.Notes, lines,
		o.Totals.ItemsTotal, o.Totals.SetFeeTotal, o.Totals.DouhanTotal, backs,
		o.Totals.ServiceFee, o.Totals.Tax, o.Totals.Total, o.Totals.ElapsedMinutes, o.Totals.BilledHours, o.Status, o.EndTime)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalParts(o Order) (guests, lines, backs []byte, err error) {
	if o.Guests == nil {
		o.Guests = []Guest{}
	}
	if o.Lines == nil {
		o.Lines = []Line{}
	}
	if o.Totals.DouhanBacks == nil {
		o.Totals.DouhanBacks = []DouhanBack{}
	}
	if guests, err = json.Marshal(o.Guests); err != nil {
		return nil, nil, nil, err
	}
	if lines, err = json.Marshal(o.Lines); err != nil {
		return nil, nil, nil, err
	}
	if backs, err = json.Marshal(o.Totals.DouhanBacks); err != nil {
		return nil, nil, nil, err
	}
	return guests, lines, backs, nil
}

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	var guests, lines, backs []byte
	err := row.Scan(&o.ID, &o.TableID, &guests, &o.Notes, &lines,
		&o.Totals.ItemsTotal, &o.Totals.SetFeeTotal, &o.Totals.DouhanTotal, &backs,
		&o.Totals.ServiceFee, &o.Totals.Tax, &o.Totals.Total, &o.Totals.ElapsedMinutes, &o.Totals.BilledHours,
		&o.Status, &o.StartTime, &o.EndTime)
	if err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(guests, &o.Guests); err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(backs, &o.Totals.DouhanBacks); err != nil {
		return Order{}, err
	}
	return o, nil
}
