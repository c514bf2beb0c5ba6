package table

import (
	"context"
	"errors"

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

func (s *Store) List(ctx context.Context) ([]Table, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, table_number, seats, status, current_order_id
    FROM club_tables
    ORDER BY table_number
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []Table
	for rows.Next() {
		var t Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Seats, &t.Status, &t.CurrentOrderID); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Table, error) {
	var t Table
	err := s.DB.QueryRow(ctx, `
    SELECT id, table_number, seats, status, current_order_id
    FROM club_tables
    WHERE id = $1
  `, id).Scan(&t.ID, &t.Number, &t.Seats, &t.Status, &t.CurrentOrderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Table{}, ErrNotFound
	}
	if err != nil {
		return Table{}, err
	}
	return t, nil
}

func (s *Store) Create(ctx context.Context, number, seats int) (Table, error) {
	var exists bool
	if err := s.DB.QueryRow(ctx, `
    SELECT EXISTS (SELECT 1 FROM club_tables WHERE table_number = $1)
  `, number).Scan(&exists); err != nil {
		return Table{}, err
	}
	if exists {
		return Table{}, ErrDuplicateNumber
	}

	t := Table{ID: uuid.NewString(), Number: number, Seats: seats, Status: StatusAvailable}
	_, err := s.DB.Exec(ctx, `
    INSERT INTO club_tables (id, table_number, seats, status)
    VALUES ($1, $2, $3, $4)
  `, t.ID, t.Number, t.Seats, t.Status)
	if err != nil {
		return Table{}, err
	}
	return t, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id, status string) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	tag, err := s.DB.Exec(ctx, `UPDATE club_tables SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Seat marks a table occupied and caches its active order id.
func (s *Store) Seat(ctx context.Context, id, orderID string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE club_tables SET status = $2, current_order_id = $3 WHERE id = $1
  `, id, StatusOccupied, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Release returns a table to the floor and drops its order reference.
func (s *Store) Release(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE club_tables SET status = $2, current_order_id = NULL WHERE id = $1
  `, id, StatusAvailable)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete refuses to remove an occupied table so a live order can never
// lose its seat.
func (s *Store) Delete(ctx context.Context, id string) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == StatusOccupied {
		return ErrOccupied
	}
	_, err = s.DB.Exec(ctx, `DELETE FROM club_tables WHERE id = $1`, id)
	return err
}
