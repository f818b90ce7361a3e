package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aaronlopez/review-board-be/internal/apperror"
	"github.com/aaronlopez/review-board-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ItemHandler handles HTTP requests for catalog items.
type ItemHandler struct {
	service services.ItemServiceProvider
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service services.ItemServiceProvider) *ItemHandler {
	return &ItemHandler{service: service}
}

// ItemPayload defines the structure for item creation requests.
type ItemPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles creating a new item.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidation("invalid request body"))
		return
	}

	item, err := h.service.CreateItem(payload.Name, payload.Description)
	if err != nil {
		log.Error().Err(err).Str("name", payload.Name).Msg("Failed to create item")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Get handles retrieving a single item by its ID.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")
	item, err := h.service.GetItemByID(id)
	if err != nil {
		log.Warn().Err(err).Str("item_id", id).Msg("Failed to get item")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// GetAll handles listing every item.
func (h *ItemHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list items")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
