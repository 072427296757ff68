// Package client is a typed HTTP client for the izbor API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/ranking"
)

// DefaultServer is the base URL used when none is configured.
const DefaultServer = "http://localhost:3001"

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to one izbor server.
type Client struct {
	base string
	http *http.Client
}

// New returns a client for the server at base (DefaultServer if empty).
// A nil httpClient gets a client with a 10 second timeout.
func New(base string, httpClient *http.Client) *Client {
	if base == "" {
		base = DefaultServer
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{base: strings.TrimRight(base, "/"), http: httpClient}
}

// ItemInput is the body of create and update requests.
type ItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Selects     int64  `json:"selects,omitempty"`
	Passes      int64  `json:"passes,omitempty"`
}

// ListItems returns the items of category ("" or "all" for every item)
// in net preference order.
func (c *Client) ListItems(ctx context.Context, category string) ([]model.Item, error) {
	var items []model.Item
	err := c.do(ctx, http.MethodGet, withCategory("/api/items", category), nil, &items)
	return items, err
}

// GetItem returns one item.
func (c *Client) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item
	if err := c.do(ctx, http.MethodGet, itemPath(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Vote records one select or pass for item id.
func (c *Client) Vote(ctx context.Context, id int64, action model.Action) error {
	body := map[string]string{"action": string(action)}
	return c.do(ctx, http.MethodPost, itemPath(id)+"/vote", body, nil)
}

// CreateItem creates an item and returns its id.
func (c *Client) CreateItem(ctx context.Context, in ItemInput) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/items", in, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// UpdateItem replaces the descriptive fields of item id. Counters in in
// are ignored by the server.
func (c *Client) UpdateItem(ctx context.Context, id int64, in ItemInput) error {
	return c.do(ctx, http.MethodPut, itemPath(id), in, nil)
}

// DeleteItem removes item id.
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

// Categories returns the category labels in use.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories)
	return categories, err
}

// CategoryStats returns per-category aggregates.
func (c *Client) CategoryStats(ctx context.Context) ([]model.CategoryStats, error) {
	var stats []model.CategoryStats
	err := c.do(ctx, http.MethodGet, "/api/stats/categories", nil, &stats)
	return stats, err
}

// OverallStats returns totals across all items.
func (c *Client) OverallStats(ctx context.Context) (*model.OverallStats, error) {
	var stats model.OverallStats
	if err := c.do(ctx, http.MethodGet, "/api/stats/overall", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Ranking returns the server-side ranking for category.
func (c *Client) Ranking(ctx context.Context, category string) ([]ranking.Entry, error) {
	var entries []ranking.Entry
	err := c.do(ctx, http.MethodGet, withCategory("/api/ranking", category), nil, &entries)
	return entries, err
}

func itemPath(id int64) string {
	return "/api/items/" + strconv.FormatInt(id, 10)
}

func withCategory(path, category string) string {
	if category == "" {
		return path
	}
	return path + "?" + url.Values{"category": {category}}.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}
