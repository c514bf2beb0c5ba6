package menu

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

func (s *Store) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.DB.Query(ctx, `SELECT id, name FROM menu_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) CreateCategory(ctx context.Context, name string) (Category, error) {
	c := Category{ID: uuid.NewString(), Name: name}
	_, err := s.DB.Exec(ctx, `INSERT INTO menu_categories (id, name) VALUES ($1, $2)`, c.ID, c.Name)
	if err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, c Category) error {
	tag, err := s.DB.Exec(ctx, `UPDATE menu_categories SET name = $2 WHERE id = $1`, c.ID, c.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM menu_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *Store) ListItems(ctx context.Context) ([]Item, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, category_id, name, price, description, is_available, is_seasonal_special, back_rate
    FROM menu_items
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Price,
			&item.Description, &item.IsAvailable, &item.IsSeasonalSpecial, &item.BackRate); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) GetItem(ctx context.Context, id string) (Item, error) {
	var item Item
	err := s.DB.QueryRow(ctx, `
    SELECT id, category_id, name, price, description, is_available, is_seasonal_special, back_rate
    FROM menu_items
    WHERE id = $1
  `, id).Scan(&item.ID, &item.CategoryID, &item.Name, &item.Price,
		&item.Description, &item.IsAvailable, &item.IsSeasonalSpecial, &item.BackRate)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *Store) CreateItem(ctx context.Context, item Item) (Item, error) {
	if err := validateItem(item); err != nil {
		return Item{}, err
	}
	item.ID = uuid.NewString()
	_, err := s.DB.Exec(ctx, `
    INSERT INTO menu_items (id, category_id, name, price, description, is_available, is_seasonal_special, back_rate)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
  `, item.ID, item.CategoryID, item.Name, item.Price, item.Description,
		item.IsAvailable, item.IsSeasonalSpecial, item.BackRate)
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *Store) UpdateItem(ctx context.Context, item Item) error {
	if err := validateItem(item); err != nil {
		return err
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE menu_items
    SET category_id = $2, name = $3, price = $4, description = $5,
        is_available = $6, is_seasonal_special = $7, back_rate = $8
    WHERE id = $1
  `, item.ID, item.CategoryID, item.Name, item.Price, item.Description,
		item.IsAvailable, item.IsSeasonalSpecial, item.BackRate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func validateItem(item Item) error {
	if item.Price < 0 {
		return ErrInvalidPrice
	}
	if item.BackRate != nil && (*item.BackRate < 0 || *item.BackRate > 1) {
		return ErrInvalidBackRate
	}
	return nil
}
