package service

import (
	"context"
	"log/slog"

	"github.com/erazemk/izbor/internal/store"
)

// ItemWriter is the write side of the item store.
type ItemWriter interface {
	CreateItem(ctx context.Context, item store.NewItem) (int64, error)
	UpdateItem(ctx context.Context, id int64, fields store.ItemFields) error
	DeleteItem(ctx context.Context, id int64) error
}

// Items creates, edits and removes catalog items.
type Items struct {
	store ItemWriter
}

// NewItems returns an item service writing to store.
func NewItems(store ItemWriter) *Items {
	return &Items{store: store}
}

// Create adds an item and returns its id.
func (s *Items) Create(ctx context.Context, item store.NewItem) (int64, error) {
	id, err := s.store.CreateItem(ctx, item)
	if err != nil {
		return 0, err
	}
	slog.Debug("item created", "item_id", id, "category", item.Category)
	return id, nil
}

// Update replaces the editable fields of item id. Counters are untouched.
func (s *Items) Update(ctx context.Context, id int64, fields store.ItemFields) error {
	if err := s.store.UpdateItem(ctx, id, fields); err != nil {
		return err
	}
	slog.Debug("item updated", "item_id", id)
	return nil
}

// Delete removes item id.
func (s *Items) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return err
	}
	slog.Debug("item deleted", "item_id", id)
	return nil
}
