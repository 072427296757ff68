package api

import (
	"net/http"

	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/service"
	"github.com/erazemk/izbor/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	Items   *service.Items
	Queries *service.Queries
}

type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

func (r itemRequest) fields() store.ItemFields {
	return store.ItemFields{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Category:    r.Category,
	}
}

type createItemRequest struct {
	itemRequest
	Selects int64 `json:"selects"`
	Passes  int64 `json:"passes"`
}

type createItemResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Queries.ListItems(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeStoreError(w, r, err, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.Queries.GetItem(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "failed to get item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.Items.Create(r.Context(), store.NewItem{
		ItemFields: req.fields(),
		Selects:    req.Selects,
		Passes:     req.Passes,
	})
	if err != nil {
		writeStoreError(w, r, err, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, createItemResponse{ID: id, Message: "item created"})
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Items.Update(r.Context(), id, req.fields()); err != nil {
		writeStoreError(w, r, err, "failed to update item")
		return
	}

	jsonResponse(w, http.StatusOK, messageResponse{Message: "item updated"})
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.Items.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "failed to delete item")
		return
	}

	jsonResponse(w, http.StatusOK, messageResponse{Message: "item deleted"})
}
