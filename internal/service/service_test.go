package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/erazemk/izbor/internal/db"
	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(db.NewTestDB(t), db.SQLite)
	if _, err := s.SeedIfEmpty(context.Background()); err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	return s
}

type countingStore struct {
	calls int
}

func (c *countingStore) IncrementCounter(context.Context, int64, string) error {
	c.calls++
	return nil
}

func TestVoteSelectAndPass(t *testing.T) {
	s := newTestStore(t)
	votes := NewVotes(s)
	ctx := context.Background()

	before, _ := s.GetItem(ctx, 1)

	if err := votes.Vote(ctx, 1, "select"); err != nil {
		t.Fatalf("Vote select: %v", err)
	}
	after, _ := s.GetItem(ctx, 1)
	if after.Selects != before.Selects+1 || after.Passes != before.Passes {
		t.Errorf("select: expected %d/%d, got %d/%d", before.Selects+1, before.Passes, after.Selects, after.Passes)
	}

	if err := votes.Vote(ctx, 1, "pass"); err != nil {
		t.Fatalf("Vote pass: %v", err)
	}
	final, _ := s.GetItem(ctx, 1)
	if final.Selects != after.Selects || final.Passes != after.Passes+1 {
		t.Errorf("pass: expected %d/%d, got %d/%d", after.Selects, after.Passes+1, final.Selects, final.Passes)
	}
}

// Votes carry no idempotency key: the same call twice is two votes.
func TestVoteIsNotIdempotent(t *testing.T) {
	s := newTestStore(t)
	votes := NewVotes(s)
	ctx := context.Background()

	before, _ := s.GetItem(ctx, 2)
	for range 2 {
		if err := votes.Vote(ctx, 2, "select"); err != nil {
			t.Fatalf("Vote: %v", err)
		}
	}
	after, _ := s.GetItem(ctx, 2)
	if after.Selects != before.Selects+2 {
		t.Errorf("expected two votes to count twice, got %d -> %d", before.Selects, after.Selects)
	}
}

func TestVoteErrors(t *testing.T) {
	s := newTestStore(t)
	votes := NewVotes(s)
	ctx := context.Background()

	snapshot, _ := s.ListItems(ctx, "")

	if err := votes.Vote(ctx, 999, "select"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	for _, action := range []string{"invalid", "", "Select", "selects"} {
		if err := votes.Vote(ctx, 1, action); !errors.Is(err, model.ErrValidation) {
			t.Errorf("Vote(%q): expected ErrValidation, got %v", action, err)
		}
	}

	after, _ := s.ListItems(ctx, "")
	if diff := cmp.Diff(snapshot, after); diff != "" {
		t.Errorf("failed votes changed records (-before +after):\n%s", diff)
	}
}

func TestInvalidActionNeverReachesStore(t *testing.T) {
	cs := &countingStore{}
	votes := NewVotes(cs)

	_ = votes.Vote(context.Background(), 1, "maybe")
	if cs.calls != 0 {
		t.Errorf("expected no store calls, got %d", cs.calls)
	}

	_ = votes.Vote(context.Background(), 1, "pass")
	if cs.calls != 1 {
		t.Errorf("expected one store call, got %d", cs.calls)
	}
}

func TestListItemsOrderedByNetPreference(t *testing.T) {
	q := NewQueries(newTestStore(t))
	ctx := context.Background()

	items, err := q.ListItems(ctx, "")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != len(store.Catalog) {
		t.Fatalf("expected %d items, got %d", len(store.Catalog), len(items))
	}
	for i := 1; i < len(items); i++ {
		prev := items[i-1].Selects - items[i-1].Passes
		cur := items[i].Selects - items[i].Passes
		if prev < cur {
			t.Errorf("items %d and %d out of net preference order (%d < %d)", i-1, i, prev, cur)
		}
	}
	// 컨버스 척 테일러 (200-30) leads the seeded catalog.
	if items[0].Name != "컨버스 척 테일러" {
		t.Errorf("expected 컨버스 척 테일러 first, got %q", items[0].Name)
	}
}

func TestListItemsFilter(t *testing.T) {
	q := NewQueries(newTestStore(t))
	ctx := context.Background()

	shoes, _ := q.ListItems(ctx, "신발")
	if len(shoes) != 3 {
		t.Fatalf("expected 3 shoes, got %d", len(shoes))
	}
	for _, item := range shoes {
		if item.Category != "신발" {
			t.Errorf("unexpected category %q", item.Category)
		}
	}

	all, _ := q.ListItems(ctx, model.CategoryAll)
	none, _ := q.ListItems(ctx, "")
	if diff := cmp.Diff(none, all); diff != "" {
		t.Errorf("%q and no filter differ (-none +all):\n%s", model.CategoryAll, diff)
	}
}

func TestGetItemIsRepeatable(t *testing.T) {
	q := NewQueries(newTestStore(t))
	ctx := context.Background()

	first, err := q.GetItem(ctx, 3)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	second, _ := q.GetItem(ctx, 3)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated reads differ (-first +second):\n%s", diff)
	}
}

func TestRanking(t *testing.T) {
	q := NewQueries(newTestStore(t))
	ctx := context.Background()

	entries, err := q.Ranking(ctx, "신발")
	if err != nil {
		t.Fatalf("Ranking: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Item.Name)
	}
	// 200/230 ≈ 0.870, 180/240 = 0.75, 120/165 ≈ 0.727
	want := []string{"컨버스 척 테일러", "아디다스 스탠 스미스", "에어 조던 1"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}
	if entries[0].Rank != 1 {
		t.Errorf("expected 1-based ranks, got %d", entries[0].Rank)
	}
}

func TestStats(t *testing.T) {
	q := NewQueries(newTestStore(t))
	ctx := context.Background()

	overall, err := q.OverallStats(ctx)
	if err != nil {
		t.Fatalf("OverallStats: %v", err)
	}
	want := &model.OverallStats{TotalItems: 9, TotalSelects: 1160, TotalPasses: 545, TotalVotes: 1705}
	if diff := cmp.Diff(want, overall); diff != "" {
		t.Errorf("overall stats mismatch (-want +got):\n%s", diff)
	}

	cats, err := q.CategoryStats(ctx)
	if err != nil {
		t.Fatalf("CategoryStats: %v", err)
	}
	if len(cats) != 3 {
		t.Errorf("expected 3 category rows, got %d", len(cats))
	}

	categories, _ := q.Categories(ctx)
	if len(categories) != 3 {
		t.Errorf("expected 3 categories, got %v", categories)
	}
}
