package api

import (
	"net/http"

	"github.com/erazemk/izbor/internal/service"
)

// VotesHandler handles the vote endpoint.
type VotesHandler struct {
	Votes *service.Votes
}

type voteRequest struct {
	Action string `json:"action"`
}

// Vote handles POST /api/items/{id}/vote.
func (h *VotesHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req voteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Votes.Vote(r.Context(), id, req.Action); err != nil {
		writeStoreError(w, r, err, "failed to record vote")
		return
	}

	jsonResponse(w, http.StatusOK, messageResponse{Message: "vote recorded"})
}
