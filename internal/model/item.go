package model

import "time"

// Item is a votable catalog entry belonging to exactly one category.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Selects     int64     `json:"selects"`
	Passes      int64     `json:"passes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Votes returns the total number of votes cast on the item.
func (i Item) Votes() int64 {
	return i.Selects + i.Passes
}

// CategoryAll is the category filter value that matches every item.
const CategoryAll = "all"

// CategoryStats aggregates the items of one category.
type CategoryStats struct {
	Category     string `json:"category"`
	ItemCount    int64  `json:"itemCount"`
	TotalSelects int64  `json:"totalSelects"`
	TotalPasses  int64  `json:"totalPasses"`
}

// OverallStats aggregates every stored item.
type OverallStats struct {
	TotalItems   int64 `json:"totalItems"`
	TotalSelects int64 `json:"totalSelects"`
	TotalPasses  int64 `json:"totalPasses"`
	TotalVotes   int64 `json:"totalVotes"`
}
