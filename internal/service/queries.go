package service

import (
	"context"

	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/ranking"
)

// Queries serves read-only projections over the item store.
type Queries struct {
	store ItemReader
}

// NewQueries returns a query service reading from store.
func NewQueries(store ItemReader) *Queries {
	return &Queries{store: store}
}

// ListItems returns the items of category (all items for "" or "all"),
// ordered by net preference, highest first.
func (q *Queries) ListItems(ctx context.Context, category string) ([]model.Item, error) {
	items, err := q.store.ListItems(ctx, category)
	if err != nil {
		return nil, err
	}
	return ranking.SortByNetPreference(items), nil
}

// GetItem returns one item.
func (q *Queries) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	return q.store.GetItem(ctx, id)
}

// Categories returns the distinct category labels in use.
func (q *Queries) Categories(ctx context.Context) ([]string, error) {
	return q.store.ListCategories(ctx)
}

// CategoryStats returns per-category aggregates.
func (q *Queries) CategoryStats(ctx context.Context) ([]model.CategoryStats, error) {
	return q.store.CategoryStats(ctx)
}

// OverallStats returns totals across all items.
func (q *Queries) OverallStats(ctx context.Context) (*model.OverallStats, error) {
	stats, err := q.store.OverallStats(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalVotes = stats.TotalSelects + stats.TotalPasses
	return stats, nil
}

// Ranking returns the items of category ranked by selection ratio.
func (q *Queries) Ranking(ctx context.Context, category string) ([]ranking.Entry, error) {
	items, err := q.store.ListItems(ctx, category)
	if err != nil {
		return nil, err
	}
	return ranking.Rank(items, category), nil
}
