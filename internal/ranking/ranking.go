// Package ranking derives orderings from item vote counts.
//
// Two metrics coexist: the selection ratio used by the ranking view, and
// the net preference used as the default listing order.
package ranking

import (
	"cmp"
	"slices"

	"github.com/erazemk/izbor/internal/model"
)

// Entry is an item with its position in a ranking.
type Entry struct {
	// Rank is 1-based.
	Rank  int        `json:"rank"`
	Ratio float64    `json:"ratio"`
	Item  model.Item `json:"item"`
}

// Percent returns the selection ratio as a percentage.
func (e Entry) Percent() float64 {
	return e.Ratio * 100
}

// Podium reports whether the entry is among the top three.
func (e Entry) Podium() bool {
	return e.Rank >= 1 && e.Rank <= 3
}

// Ratio returns selects / (selects + passes), or 0 for an item without votes.
func Ratio(item model.Item) float64 {
	total := item.Selects + item.Passes
	if total <= 0 {
		return 0
	}
	return float64(item.Selects) / float64(total)
}

// NetPreference returns selects - passes.
func NetPreference(item model.Item) int64 {
	return item.Selects - item.Passes
}

// Filter returns the items of one category. An empty category or
// model.CategoryAll keeps everything. The input is not modified.
func Filter(items []model.Item, category string) []model.Item {
	if category == "" || category == model.CategoryAll {
		return slices.Clone(items)
	}
	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Rank filters items by category and orders them by selection ratio,
// highest first. Items with equal ratios keep their input order.
func Rank(items []model.Item, category string) []Entry {
	filtered := Filter(items, category)

	entries := make([]Entry, len(filtered))
	for i, item := range filtered {
		entries[i] = Entry{Ratio: Ratio(item), Item: item}
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Ratio, a.Ratio)
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// SortByNetPreference returns a copy of items ordered by net preference,
// highest first. Ties keep their input order.
func SortByNetPreference(items []model.Item) []model.Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b model.Item) int {
		return cmp.Compare(NetPreference(b), NetPreference(a))
	})
	return out
}

// ApplyVote returns a copy of items with one counter of item id
// incremented, mirroring a vote the server accepted. It reports false
// and returns the input unchanged when id is not present.
func ApplyVote(items []model.Item, id int64, action model.Action) ([]model.Item, bool) {
	idx := slices.IndexFunc(items, func(item model.Item) bool { return item.ID == id })
	if idx < 0 {
		return items, false
	}

	out := slices.Clone(items)
	switch action {
	case model.ActionSelect:
		out[idx].Selects++
	case model.ActionPass:
		out[idx].Passes++
	default:
		return items, false
	}
	return out, true
}
