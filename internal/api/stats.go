package api

import (
	"net/http"

	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/ranking"
	"github.com/erazemk/izbor/internal/service"
)

// StatsHandler serves aggregate and ranking views.
type StatsHandler struct {
	Queries *service.Queries
}

// CategoryStats handles GET /api/stats/categories.
func (h *StatsHandler) CategoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Queries.CategoryStats(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "failed to get category stats")
		return
	}
	if stats == nil {
		stats = []model.CategoryStats{}
	}
	jsonResponse(w, http.StatusOK, stats)
}

// OverallStats handles GET /api/stats/overall.
func (h *StatsHandler) OverallStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Queries.OverallStats(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "failed to get overall stats")
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}

// Categories handles GET /api/categories.
func (h *StatsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Queries.Categories(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	jsonResponse(w, http.StatusOK, categories)
}

// Ranking handles GET /api/ranking.
func (h *StatsHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Queries.Ranking(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeStoreError(w, r, err, "failed to rank items")
		return
	}
	if entries == nil {
		entries = []ranking.Entry{}
	}
	jsonResponse(w, http.StatusOK, entries)
}
