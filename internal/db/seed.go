package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed installs the initial store settings and a small cast roster so a
// fresh database is usable immediately. Every step is a no-op when data
// already exists.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureSettings(ctx, pool); err != nil {
		return err
	}
	return ensureSampleCasts(ctx, pool)
}

func ensureSettings(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
    INSERT INTO store_settings (id, hourly_set_fee, douhan_fee, douhan_back_rate, service_fee_rate, tax_rate, open_time, close_time)
    VALUES (1, 5000, 3000, 0.5, 0.1, 0.1, '20:00', '05:00')
    ON CONFLICT (id) DO NOTHING
  `)
	return err
}

func ensureSampleCasts(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM casts").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []struct {
		name string
		wage float64
	}{
		{"Misaki", 3000},
		{"Ai", 2500},
		{"Rei", 2000},
		{"Kanon", 1500},
	}
	for _, sample := range samples {
		_, err := pool.Exec(ctx, `
      INSERT INTO casts (id, name, hourly_wage, is_active)
      VALUES ($1, $2, $3, TRUE)
    `, uuid.NewString(), sample.name, sample.wage)
		if err != nil {
			return err
		}
	}
	return nil
}
