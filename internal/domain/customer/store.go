package customer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) List(ctx context.Context) ([]Customer, error) {
	return s.query(ctx, `
    SELECT id, name, visit_count, last_visit, is_vip, preferred_cast_id, notes
    FROM customers
    ORDER BY last_visit DESC
  `)
}

func (s *Store) SearchByName(ctx context.Context, name string) ([]Customer, error) {
	return s.query(ctx, `
    SELECT id, name, visit_count, last_visit, is_vip, preferred_cast_id, notes
    FROM customers
    WHERE lower(name) LIKE '%' || lower($1) || '%'
    ORDER BY last_visit DESC
  `, name)
}

func (s *Store) query(ctx context.Context, sql string, args ...any) ([]Customer, error) {
	rows, err := s.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.VisitCount, &c.LastVisit, &c.IsVIP, &c.PreferredCastID, &c.Notes); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// RecordVisits upserts history for each named guest of a seated party:
// repeat visitors get their visit count bumped, the VIP flag is sticky,
// and a nomination becomes the preferred cast.
func (s *Store) RecordVisits(ctx context.Context, visits []Visit, now time.Time) error {
	for _, visit := range visits {
		name := strings.TrimSpace(visit.Name)
		if name == "" {
			continue
		}

		var preferred *string
		if visit.ShimeiCastID != "" {
			preferred = &visit.ShimeiCastID
		}

		matches, err := s.query(ctx, `
      SELECT id, name, visit_count, last_visit, is_vip, preferred_cast_id, notes
      FROM customers
      WHERE lower(name) = lower($1)
      ORDER BY last_visit DESC
    `, name)
		if err != nil {
			return err
		}
		if len(matches) > 0 {
			existing := matches[0]
			if preferred == nil {
				preferred = existing.PreferredCastID
			}
			_, err = s.DB.Exec(ctx, `
        UPDATE customers
        SET visit_count = visit_count + 1, last_visit = $2, is_vip = is_vip OR $3, preferred_cast_id = $4
        WHERE id = $1
      `, existing.ID, now, visit.IsVIP, preferred)
			if err != nil {
				return err
			}
			continue
		}

		_, err = s.DB.Exec(ctx, `
      INSERT INTO customers (id, name, visit_count, last_visit, is_vip, preferred_cast_id)
      VALUES ($1, $2, 1, $3, $4, $5)
    `, uuid.NewString(), name, now, visit.IsVIP, preferred)
		if err != nil {
			return err
		}
	}
	return nil
}
