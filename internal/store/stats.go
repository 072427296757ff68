package store

import (
	"context"

	"github.com/erazemk/izbor/internal/model"
)

// CategoryStats returns per-category item counts and vote totals.
func (s *Store) CategoryStats(ctx context.Context) ([]model.CategoryStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category,
		        COUNT(*),
		        CAST(COALESCE(SUM(selects), 0) AS BIGINT),
		        CAST(COALESCE(SUM(passes), 0) AS BIGINT)
		 FROM items
		 GROUP BY category
		 ORDER BY category`,
	)
	if err != nil {
		return nil, storageErr("querying category stats", err)
	}
	defer rows.Close()

	var stats []model.CategoryStats
	for rows.Next() {
		var cs model.CategoryStats
		if err := rows.Scan(&cs.Category, &cs.ItemCount, &cs.TotalSelects, &cs.TotalPasses); err != nil {
			return nil, storageErr("scanning category stats", err)
		}
		stats = append(stats, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("querying category stats", err)
	}
	return stats, nil
}

// OverallStats returns totals across every item. An empty store yields zeros.
func (s *Store) OverallStats(ctx context.Context) (*model.OverallStats, error) {
	stats := &model.OverallStats{}
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        CAST(COALESCE(SUM(selects), 0) AS BIGINT),
		        CAST(COALESCE(SUM(passes), 0) AS BIGINT)
		 FROM items`,
	).Scan(&stats.TotalItems, &stats.TotalSelects, &stats.TotalPasses)
	if err != nil {
		return nil, storageErr("querying overall stats", err)
	}
	stats.TotalVotes = stats.TotalSelects + stats.TotalPasses
	return stats, nil
}
