package shift

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("shift not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) ListByDate(ctx context.Context, date time.Time) ([]Shift, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, cast_id, shift_date, start_time, end_time, status
    FROM shifts
    WHERE shift_date = $1
    ORDER BY start_time
  `, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

func (s *Store) ListByCast(ctx context.Context, castID string) ([]Shift, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, cast_id, shift_date, start_time, end_time, status
    FROM shifts
    WHERE cast_id = $1
    ORDER BY shift_date
  `, castID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

// Upsert records attendance for a cast/date; one shift per cast per day.
func (s *Store) Upsert(ctx context.Context, castID string, date time.Time, startTime string, endTime *string) (Shift, error) {
	if _, err := ClockMinutes(startTime); err != nil {
		return Shift{}, err
	}
	if endTime != nil && *endTime != "" {
		if _, err := ClockMinutes(*endTime); err != nil {
			return Shift{}, err
		}
	}

	sh := Shift{
		ID:        uuid.NewString(),
		CastID:    castID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    StatusWorking,
	}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO shifts (id, cast_id, shift_date, start_time, end_time, status)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (cast_id, shift_date) DO UPDATE SET
      start_time = EXCLUDED.start_time,
      end_time = EXCLUDED.end_time,
      status = EXCLUDED.status
    RETURNING id
  `, sh.ID, sh.CastID, sh.Date.Format("2006-01-02"), sh.StartTime, sh.EndTime, sh.Status).Scan(&sh.ID)
	if err != nil {
		return Shift{}, err
	}
	return sh, nil
}

// Delete removes a shift, turning the date back into a day off.
func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanShifts(rows pgx.Rows) ([]Shift, error) {
	var shifts []Shift
	for rows.Next() {
		var sh Shift
		if err := rows.Scan(&sh.ID, &sh.CastID, &sh.Date, &sh.StartTime, &sh.EndTime, &sh.Status); err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}
