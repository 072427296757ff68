package db

import "testing"

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"", SQLite, false},
		{"sqlite", SQLite, false},
		{"SQLite3", SQLite, false},
		{"postgres", Postgres, false},
		{"pgx", Postgres, false},
		{"mysql", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDialect(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDialect(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDialect(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRebind(t *testing.T) {
	q := `UPDATE items SET name = ?, category = ? WHERE id = ?`

	if got := SQLite.Rebind(q); got != q {
		t.Errorf("sqlite rebind changed query: %q", got)
	}

	want := `UPDATE items SET name = $1, category = $2 WHERE id = $3`
	if got := Postgres.Rebind(q); got != want {
		t.Errorf("postgres rebind = %q, want %q", got, want)
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	database := NewTestDB(t)

	if err := EnsureSchema(database, SQLite); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}

	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		t.Fatalf("querying items: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty items table, got %d rows", n)
	}
}

func TestSQLiteDSN(t *testing.T) {
	got := sqliteDSN("data.sqlite3")
	want := "data.sqlite3?_pragma=busy_timeout%285000%29&_pragma=journal_mode%28WAL%29&_pragma=synchronous%28NORMAL%29"
	if got != want {
		t.Errorf("sqliteDSN = %q, want %q", got, want)
	}
}
