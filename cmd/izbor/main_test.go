package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/izbor/internal/api"
	"github.com/erazemk/izbor/internal/config"
	"github.com/erazemk/izbor/internal/db"
	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/ranking"
	"github.com/erazemk/izbor/internal/store"
)

func TestLevelRouter(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(newLevelRouter(&stdout, &stderr, slog.LevelInfo)).With("component", "test")

	logger.Debug("hidden")
	logger.Info("hello")
	logger.Warn("careful")
	logger.Error("broken")

	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "hello")
	assert.Contains(t, stdout.String(), "careful")
	assert.Contains(t, stdout.String(), "component=test")
	assert.NotContains(t, stdout.String(), "broken")
	assert.Contains(t, stderr.String(), "broken")
}

func TestLevelRouterDebug(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(newLevelRouter(&stdout, &stderr, slog.LevelDebug))

	logger.Debug("details")
	assert.Contains(t, stdout.String(), "details")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "izbor.jsonc")

	out, err := run(t, "init-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"addr": ":3001"`)

	_, err = run(t, "init-config", path)
	assert.ErrorIs(t, err, config.ErrExists)
}

func testServer(t *testing.T) string {
	t.Helper()
	s := store.New(db.NewTestDB(t), db.SQLite)
	_, err := s.SeedIfEmpty(context.Background())
	require.NoError(t, err)

	server := httptest.NewServer(api.NewRouter(s, api.Options{}))
	t.Cleanup(server.Close)
	return server.URL
}

func TestRankingCommand(t *testing.T) {
	url := testServer(t)

	out, err := run(t, "ranking", "--server", url, "--category", "신발", "--json")
	require.NoError(t, err)

	var entries []ranking.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "컨버스 척 테일러", entries[0].Item.Name)

	out, err = run(t, "ranking", "--server", url)
	require.NoError(t, err)
	assert.Contains(t, out, "컨버스 척 테일러")
}

func TestStatsCommand(t *testing.T) {
	url := testServer(t)

	out, err := run(t, "stats", "--server", url, "--json")
	require.NoError(t, err)

	var got struct {
		Overall    model.OverallStats    `json:"overall"`
		Categories []model.CategoryStats `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(1705), got.Overall.TotalVotes)
	assert.Len(t, got.Categories, 3)

	out, err = run(t, "stats", "--server", url)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "1705"), "table output should include the vote total")
}

func TestClientCommandUnreachable(t *testing.T) {
	_, err := run(t, "stats", "--server", "http://127.0.0.1:1")
	assert.Error(t, err)
}

func TestOpenStoreSeedsOnce(t *testing.T) {
	cfg := config.Default()
	cfg.DSN = filepath.Join(t.TempDir(), "izbor.sqlite3")
	ctx := context.Background()

	s, closeDB, err := openStore(ctx, cfg)
	require.NoError(t, err)
	n, err := s.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(store.Catalog)), n)
	require.NoError(t, closeDB())

	s, closeDB, err = openStore(ctx, cfg)
	require.NoError(t, err)
	defer closeDB()
	n, err = s.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(store.Catalog)), n)
}

func TestOpenStoreWithoutSeed(t *testing.T) {
	cfg := config.Default()
	cfg.DSN = filepath.Join(t.TempDir(), "izbor.sqlite3")
	cfg.Seed = false
	ctx := context.Background()

	s, closeDB, err := openStore(ctx, cfg)
	require.NoError(t, err)
	defer closeDB()

	n, err := s.CountItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
