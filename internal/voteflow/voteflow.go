// Package voteflow is the client-side state of a voting session: which
// item is shown, whether a vote is in flight, and the locally updated
// counts used to render a ranking without refetching.
//
// A Flow is not safe for concurrent use. The terminal client drives it
// from a single update loop.
package voteflow

import (
	"errors"
	"slices"

	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/ranking"
)

var (
	// ErrBusy is returned by Begin while another vote is in flight.
	ErrBusy = errors.New("a vote is already in flight")
	// ErrDone is returned by Begin when every item has been voted on.
	ErrDone = errors.New("no items left to vote on")
)

// Flow walks the items of one category in order.
type Flow struct {
	items    []model.Item // display cache, all categories
	view     []model.Item // items of the selected category
	category string
	cursor   int
	done     bool

	pending         bool
	pendingID       int64
	pendingCategory string
	lastErr         error
}

// New returns a flow over items, starting at the first item of category.
func New(items []model.Item, category string) *Flow {
	f := &Flow{items: slices.Clone(items)}
	f.SetCategory(category)
	return f
}

// SetCategory selects a category ("" or model.CategoryAll for every item),
// moving the cursor back to the first item and clearing the done flag.
func (f *Flow) SetCategory(category string) {
	if category == "" {
		category = model.CategoryAll
	}
	f.category = category
	f.view = ranking.Filter(f.items, category)
	f.cursor = 0
	f.done = len(f.view) == 0
	f.lastErr = nil
}

// Category returns the selected category.
func (f *Flow) Category() string {
	return f.category
}

// Categories returns model.CategoryAll followed by the distinct
// categories of the cached items in first-seen order.
func (f *Flow) Categories() []string {
	out := []string{model.CategoryAll}
	for _, item := range f.items {
		if !slices.Contains(out, item.Category) {
			out = append(out, item.Category)
		}
	}
	return out
}

// Current returns the item awaiting a vote.
func (f *Flow) Current() (model.Item, bool) {
	if f.done || f.cursor >= len(f.view) {
		return model.Item{}, false
	}
	return f.view[f.cursor], true
}

// Position returns the zero-based cursor and the number of items in the
// selected category.
func (f *Flow) Position() (index, total int) {
	return f.cursor, len(f.view)
}

// Done reports whether every item of the category has been voted on.
func (f *Flow) Done() bool {
	return f.done
}

// Pending reports whether a vote is in flight.
func (f *Flow) Pending() bool {
	return f.pending
}

// Err returns the error of the last failed vote, cleared by the next
// Begin or SetCategory.
func (f *Flow) Err() error {
	return f.lastErr
}

// Begin marks a vote on the current item as in flight and returns that
// item. Only one vote may be in flight at a time.
func (f *Flow) Begin() (model.Item, error) {
	if f.pending {
		return model.Item{}, ErrBusy
	}
	item, ok := f.Current()
	if !ok {
		return model.Item{}, ErrDone
	}
	f.pending = true
	f.pendingID = item.ID
	f.pendingCategory = f.category
	f.lastErr = nil
	return item, nil
}

// Succeed records that the server accepted the in-flight vote: the
// cached counts are updated and the cursor advances, setting done after
// the last item.
func (f *Flow) Succeed(action model.Action) {
	if !f.pending {
		return
	}
	f.pending = false

	f.items, _ = ranking.ApplyVote(f.items, f.pendingID, action)
	f.view, _ = ranking.ApplyVote(f.view, f.pendingID, action)

	// A category switch while the vote was in flight restarts the view,
	// even when the new view happens to begin with the voted item.
	if f.category != f.pendingCategory {
		return
	}
	if item, ok := f.Current(); !ok || item.ID != f.pendingID {
		return
	}
	f.cursor++
	if f.cursor >= len(f.view) {
		f.done = true
	}
}

// Fail records that the in-flight vote was rejected or never arrived.
// Counts and cursor are left alone so the same item can be retried.
func (f *Flow) Fail(err error) {
	if !f.pending {
		return
	}
	f.pending = false
	f.lastErr = err
}

// Items returns a copy of the display cache.
func (f *Flow) Items() []model.Item {
	return slices.Clone(f.items)
}

// Ranking ranks the cached items of the selected category.
func (f *Flow) Ranking() []ranking.Entry {
	return ranking.Rank(f.items, f.category)
}
