package api

import (
	"net/http"

	"github.com/erazemk/izbor/internal/service"
	"github.com/erazemk/izbor/internal/store"
)

// Options tune the API router.
type Options struct {
	// CORSOrigin is sent as Access-Control-Allow-Origin. Empty disables CORS headers.
	CORSOrigin string
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(s *store.Store, opts Options) http.Handler {
	mux := http.NewServeMux()

	queries := service.NewQueries(s)
	itemsHandler := &ItemsHandler{Items: service.NewItems(s), Queries: queries}
	votesHandler := &VotesHandler{Votes: service.NewVotes(s)}
	statsHandler := &StatsHandler{Queries: queries}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Items.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)

	// Voting.
	mux.HandleFunc("POST /api/items/{id}/vote", votesHandler.Vote)

	// Read-only projections.
	mux.HandleFunc("GET /api/categories", statsHandler.Categories)
	mux.HandleFunc("GET /api/ranking", statsHandler.Ranking)
	mux.HandleFunc("GET /api/stats/categories", statsHandler.CategoryStats)
	mux.HandleFunc("GET /api/stats/overall", statsHandler.OverallStats)

	return SecurityHeaders(CORS(opts.CORSOrigin)(mux))
}
