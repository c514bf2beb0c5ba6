package cast

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("cast not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) List(ctx context.Context) ([]Cast, error) {
	return s.list(ctx, `SELECT id, name, hourly_wage, is_active FROM casts ORDER BY name`)
}

func (s *Store) ListActive(ctx context.Context) ([]Cast, error) {
	return s.list(ctx, `SELECT id, name, hourly_wage, is_active FROM casts WHERE is_active ORDER BY name`)
}

func (s *Store) list(ctx context.Context, query string) ([]Cast, error) {
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var casts []Cast
	for rows.Next() {
		var c Cast
		if err := rows.Scan(&c.ID, &c.Name, &c.HourlyWage, &c.IsActive); err != nil {
			return nil, err
		}
		casts = append(casts, c)
	}
	return casts, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Cast, error) {
	var c Cast
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, hourly_wage, is_active FROM casts WHERE id = $1
  `, id).Scan(&c.ID, &c.Name, &c.HourlyWage, &c.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return Cast{}, ErrNotFound
	}
	if err != nil {
		return Cast{}, err
	}
	return c, nil
}

func (s *Store) Create(ctx context.Context, name string, hourlyWage float64, isActive bool) (Cast, error) {
	c := Cast{ID: uuid.NewString(), Name: name, HourlyWage: hourlyWage, IsActive: isActive}
	_, err := s.DB.Exec(ctx, `
    INSERT INTO casts (id, name, hourly_wage, is_active) VALUES ($1, $2, $3, $4)
  `, c.ID, c.Name, c.HourlyWage, c.IsActive)
	if err != nil {
		return Cast{}, err
	}
	return c, nil
}

func (s *Store) Update(ctx context.Context, c Cast) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE casts SET name = $2, hourly_wage = $3, is_active = $4 WHERE id = $1
  `, c.ID, c.Name, c.HourlyWage, c.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM casts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
