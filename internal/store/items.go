package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/erazemk/izbor/internal/model"
)

// ItemFields are the user-editable fields of an item.
type ItemFields struct {
	Name        string
	Description string
	Image       string
	Category    string
}

func (f ItemFields) validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Category) == "" {
		return fmt.Errorf("%w: name and category are required", model.ErrValidation)
	}
	return nil
}

// NewItem describes an item to create. Counters default to zero.
type NewItem struct {
	ItemFields
	Selects int64
	Passes  int64
}

const itemColumns = `id, name, description, image, category, selects, passes, created_at, updated_at`

// counterColumns whitelists the columns IncrementCounter may touch.
var counterColumns = map[string]string{
	model.CounterSelects: "selects",
	model.CounterPasses:  "passes",
}

// CreateItem inserts a new item and returns its id.
func (s *Store) CreateItem(ctx context.Context, item NewItem) (int64, error) {
	if err := item.validate(); err != nil {
		return 0, err
	}
	if item.Selects < 0 || item.Passes < 0 {
		return 0, fmt.Errorf("%w: counters must not be negative", model.ErrValidation)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, s.q(
		`INSERT INTO items (name, description, image, category, selects, passes)
		 VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		item.Name, item.Description, item.Image, item.Category, item.Selects, item.Passes,
	).Scan(&id)
	if err != nil {
		return 0, storageErr("creating item", err)
	}
	return id, nil
}

// GetItem returns an item by ID.
func (s *Store) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx, s.q(
		`SELECT `+itemColumns+` FROM items WHERE id = ?`), id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("getting item", err)
	}
	return item, nil
}

// ListItems returns all items, optionally filtered by exact category.
// An empty category or model.CategoryAll disables the filter.
func (s *Store) ListItems(ctx context.Context, category string) ([]model.Item, error) {
	var rows *sql.Rows
	var err error

	if category != "" && category != model.CategoryAll {
		rows, err = s.db.QueryContext(ctx, s.q(
			`SELECT `+itemColumns+` FROM items WHERE category = ? ORDER BY id`), category,
		)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT `+itemColumns+` FROM items ORDER BY id`,
		)
	}
	if err != nil {
		return nil, storageErr("listing items", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, storageErr("scanning item", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("listing items", err)
	}
	return items, nil
}

// ListCategories returns the distinct category labels in use.
func (s *Store) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM items ORDER BY category`,
	)
	if err != nil {
		return nil, storageErr("listing categories", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, storageErr("scanning category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("listing categories", err)
	}
	return categories, nil
}

// UpdateItem replaces an item's editable fields. Counters are left alone.
func (s *Store) UpdateItem(ctx context.Context, id int64, f ItemFields) error {
	if err := f.validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, s.q(
		`UPDATE items SET name = ?, description = ?, image = ?, category = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`),
		f.Name, f.Description, f.Image, f.Category, id,
	)
	if err != nil {
		return storageErr("updating item", err)
	}
	return requireAffected(result, id, "updating item")
}

// IncrementCounter adds one to the named counter of an item.
//
// The increment is a single relative UPDATE, so concurrent calls for the
// same id are serialized by the database and none is lost.
func (s *Store) IncrementCounter(ctx context.Context, id int64, counter string) error {
	col, ok := counterColumns[counter]
	if !ok {
		return fmt.Errorf("%w: unknown counter %q", model.ErrValidation, counter)
	}

	result, err := s.db.ExecContext(ctx, s.q(
		`UPDATE items SET `+col+` = `+col+` + 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`), id,
	)
	if err != nil {
		return storageErr("incrementing "+col, err)
	}
	return requireAffected(result, id, "incrementing "+col)
}

// DeleteItem permanently removes an item.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, s.q(`DELETE FROM items WHERE id = ?`), id)
	if err != nil {
		return storageErr("deleting item", err)
	}
	return requireAffected(result, id, "deleting item")
}

// CountItems returns the number of stored items.
func (s *Store) CountItems(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, storageErr("counting items", err)
	}
	return n, nil
}

func requireAffected(result sql.Result, id int64, op string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if n == 0 {
		return fmt.Errorf("item %d: %w", id, model.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	item := &model.Item{}
	if err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Image, &item.Category,
		&item.Selects, &item.Passes, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return item, nil
}
