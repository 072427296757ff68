package service

import (
	"context"
	"log/slog"

	"github.com/erazemk/izbor/internal/model"
)

// Votes applies select/pass votes to items.
type Votes struct {
	store CounterStore
}

// NewVotes returns a vote service writing to store.
func NewVotes(store CounterStore) *Votes {
	return &Votes{store: store}
}

// Vote records one vote on item id. action must be exactly "select" or
// "pass". Votes are not deduplicated: calling Vote twice counts twice.
func (v *Votes) Vote(ctx context.Context, id int64, action string) error {
	a, err := model.ParseAction(action)
	if err != nil {
		return err
	}

	if err := v.store.IncrementCounter(ctx, id, a.Counter()); err != nil {
		return err
	}

	slog.Debug("vote recorded", "item_id", id, "action", string(a))
	return nil
}
