package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/izbor/internal/api"
	"github.com/erazemk/izbor/internal/db"
	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/store"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	s := store.New(db.NewTestDB(t), db.SQLite)
	_, err := s.SeedIfEmpty(context.Background())
	require.NoError(t, err)

	server := httptest.NewServer(api.NewRouter(s, api.Options{}))
	t.Cleanup(server.Close)
	return New(server.URL+"/", server.Client())
}

func TestListAndVote(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	items, err := c.ListItems(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, len(store.Catalog))

	first := items[0]
	require.NoError(t, c.Vote(ctx, first.ID, model.ActionSelect))
	require.NoError(t, c.Vote(ctx, first.ID, model.ActionPass))

	got, err := c.GetItem(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Selects+1, got.Selects)
	assert.Equal(t, first.Passes+1, got.Passes)
}

func TestCategoryFilter(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	shoes, err := c.ListItems(ctx, "신발")
	require.NoError(t, err)
	assert.Len(t, shoes, 3)

	all, err := c.ListItems(ctx, model.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, len(store.Catalog))

	categories, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"신발", "의류", "악세사리"}, categories)
}

func TestItemLifecycle(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	id, err := c.CreateItem(ctx, ItemInput{Name: "Cap", Category: "악세사리", Selects: 3})
	require.NoError(t, err)
	require.NotZero(t, id)

	require.NoError(t, c.UpdateItem(ctx, id, ItemInput{Name: "Bucket hat", Category: "악세사리"}))

	item, err := c.GetItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bucket hat", item.Name)
	assert.Equal(t, int64(3), item.Selects)

	require.NoError(t, c.DeleteItem(ctx, id))
	_, err = c.GetItem(ctx, id)
	assert.True(t, IsNotFound(err), "expected not found, got %v", err)
}

func TestAPIErrors(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	err := c.Vote(ctx, 9999, model.ActionSelect)
	assert.True(t, IsNotFound(err))

	err = c.Vote(ctx, 1, model.Action("like"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)

	_, err = c.CreateItem(ctx, ItemInput{Name: "no category"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestStatsAndRanking(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	overall, err := c.OverallStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.OverallStats{TotalItems: 9, TotalSelects: 1160, TotalPasses: 545, TotalVotes: 1705}, *overall)

	perCategory, err := c.CategoryStats(ctx)
	require.NoError(t, err)
	assert.Len(t, perCategory, 3)

	entries, err := c.Ranking(ctx, "신발")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "컨버스 척 테일러", entries[0].Item.Name)
	assert.Equal(t, 1, entries[0].Rank)
}

func TestUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := New(url, nil).ListItems(context.Background(), "")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}
