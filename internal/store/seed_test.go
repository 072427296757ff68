package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/erazemk/izbor/internal/db"
)

func TestSeedIfEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seeded, err := s.SeedIfEmpty(ctx)
	if err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	if !seeded {
		t.Fatal("expected empty store to be seeded")
	}

	items, _ := s.ListItems(ctx, "")
	if len(items) != 9 {
		t.Fatalf("expected 9 catalog items, got %d", len(items))
	}

	perCategory := map[string]int{}
	for _, item := range items {
		perCategory[item.Category]++
		if item.Selects == 0 || item.Passes == 0 {
			t.Errorf("catalog item %q has zero starting counters", item.Name)
		}
	}
	for _, c := range []string{"신발", "의류", "악세사리"} {
		if perCategory[c] != 3 {
			t.Errorf("expected 3 items in %q, got %d", c, perCategory[c])
		}
	}

	seeded, err = s.SeedIfEmpty(ctx)
	if err != nil {
		t.Fatalf("second SeedIfEmpty: %v", err)
	}
	if seeded {
		t.Error("expected non-empty store not to be seeded again")
	}
	if n, _ := s.CountItems(ctx); n != 9 {
		t.Errorf("expected 9 items after second seed, got %d", n)
	}
}

func TestSeedSkipsStoreWithUserItems(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreate(t, s, "Mine", "own", 0, 0)

	seeded, err := s.SeedIfEmpty(ctx)
	if err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	if seeded {
		t.Error("store with items must not be seeded")
	}
}

// Deleting every item and restarting brings the catalog back, because
// seeding is guarded only by the emptiness check.
func TestReseedAfterDeletingEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reseed.sqlite3")
	ctx := context.Background()

	open := func() *Store {
		database, err := db.Open(db.SQLite, path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		t.Cleanup(func() { database.Close() })
		if err := db.EnsureSchema(database, db.SQLite); err != nil {
			t.Fatalf("EnsureSchema: %v", err)
		}
		return New(database, db.SQLite)
	}

	first := open()
	if _, err := first.SeedIfEmpty(ctx); err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	items, _ := first.ListItems(ctx, "")
	for _, item := range items {
		if err := first.DeleteItem(ctx, item.ID); err != nil {
			t.Fatalf("DeleteItem: %v", err)
		}
	}
	first.db.Close()

	second := open()
	seeded, err := second.SeedIfEmpty(ctx)
	if err != nil {
		t.Fatalf("SeedIfEmpty after restart: %v", err)
	}
	if !seeded {
		t.Fatal("expected emptied store to be reseeded on restart")
	}
	if n, _ := second.CountItems(ctx); n != int64(len(Catalog)) {
		t.Errorf("expected %d items after reseed, got %d", len(Catalog), n)
	}
}
