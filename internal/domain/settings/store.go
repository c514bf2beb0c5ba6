package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) Get(ctx context.Context) (StoreSettings, error) {
	var current StoreSettings
	err := s.DB.QueryRow(ctx, `
    SELECT hourly_set_fee, douhan_fee, douhan_back_rate, service_fee_rate, tax_rate, open_time, close_time
    FROM store_settings
    WHERE id = 1
  `).Scan(&current.HourlySetFee, &current.DouhanFee, &current.DouhanBackRate,
		&current.ServiceFeeRate, &current.TaxRate, &current.OpenTime, &current.CloseTime)
	if errors.Is(err, pgx.ErrNoRows) {
		return Defaults(), nil
	}
	if err != nil {
		return StoreSettings{}, err
	}
	return current, nil
}

func (s *Store) Update(ctx context.Context, updated StoreSettings) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO store_settings (id, hourly_set_fee, douhan_fee, douhan_back_rate, service_fee_rate, tax_rate, open_time, close_time, updated_at)
    VALUES (1, $1, $2, $3, $4, $5, $6, $7, now())
    ON CONFLICT (id) DO UPDATE SET
      hourly_set_fee = EXCLUDED.hourly_set_fee,
      douhan_fee = EXCLUDED.douhan_fee,
      douhan_back_rate = EXCLUDED.douhan_back_rate,
      service_fee_rate = EXCLUDED.service_fee_rate,
      tax_rate = EXCLUDED.tax_rate,
      open_time = EXCLUDED.open_time,
      close_time = EXCLUDED.close_time,
      updated_at = now()
  `, updated.HourlySetFee, updated.DouhanFee, updated.DouhanBackRate,
		updated.ServiceFeeRate, updated.TaxRate, updated.OpenTime, updated.CloseTime)
	return err
}
