package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avoronin/go-item-vault/internal/logger"
	"github.com/avoronin/go-item-vault/internal/service"
	"github.com/avoronin/go-item-vault/internal/store"
	"github.com/avoronin/go-item-vault/internal/utils"
	"github.com/avoronin/go-item-vault/models"
)

// itemBody is the request body accepted by the item create and upsert
// endpoints. The item name comes from the URL, never from the body.
// Price is a pointer so that a body without the field can be told apart
// from an explicit zero price.
type itemBody struct {
	Price *float64 `json:"price"`
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	foundItem, err := h.services.ItemService.GetItem(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("item lookup failed")
		writeItemError(w, err)
		return
	}

	utils.WriteJSON(w, foundItem, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	var body itemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if body.Price == nil {
		log.Error().Str("name", name).Msg("price field is missing")
		http.Error(w, "price field is missing", http.StatusBadRequest)
		return
	}

	createdItem, err := h.services.ItemService.CreateItem(ctx, models.Item{Name: name, Price: *body.Price})
	if err != nil {
		log.Err(err).Str("name", name).Msg("item creation failed")
		writeItemError(w, err)
		return
	}

	utils.WriteJSON(w, createdItem, http.StatusCreated)
}

func (h *Handler) upsertItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	var body itemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if body.Price == nil {
		log.Error().Str("name", name).Msg("price field is missing")
		http.Error(w, "price field is missing", http.StatusBadRequest)
		return
	}

	savedItem, err := h.services.ItemService.UpsertItem(ctx, models.Item{Name: name, Price: *body.Price})
	if err != nil {
		log.Err(err).Str("name", name).Msg("item upsert failed")
		writeItemError(w, err)
		return
	}

	utils.WriteJSON(w, savedItem, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	if err := h.services.ItemService.DeleteItem(ctx, name); err != nil {
		log.Err(err).Str("name", name).Msg("item deletion failed")
		writeItemError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "item deleted"}, http.StatusOK)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.services.ItemService.ListItems(ctx)
	if err != nil {
		log.Err(err).Msg("item listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ItemsResponse{Items: items}, http.StatusOK)
}

// writeItemError maps item service/store errors onto HTTP status codes and
// writes the corresponding error response.
func writeItemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidItemName) || errors.Is(err, service.ErrInvalidItemPrice):
		http.Error(w, "invalid item data provided", http.StatusBadRequest)
	case errors.Is(err, store.ErrItemAlreadyExists):
		http.Error(w, "item already exists", http.StatusConflict)
	case errors.Is(err, store.ErrNoItemWasFound):
		http.Error(w, "item not found", http.StatusNotFound)
	default:
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
	}
}
