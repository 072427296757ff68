// Package service holds the vote and query operations exposed over HTTP.
// Both services are stateless; the item store is the only shared state.
package service

import (
	"context"

	"github.com/erazemk/izbor/internal/model"
)

// CounterStore increments vote counters.
type CounterStore interface {
	IncrementCounter(ctx context.Context, id int64, counter string) error
}

// ItemReader is the read side of the item store.
type ItemReader interface {
	GetItem(ctx context.Context, id int64) (*model.Item, error)
	ListItems(ctx context.Context, category string) ([]model.Item, error)
	ListCategories(ctx context.Context) ([]string, error)
	CategoryStats(ctx context.Context) ([]model.CategoryStats, error)
	OverallStats(ctx context.Context) (*model.OverallStats, error)
}
