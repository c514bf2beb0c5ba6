package menuhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clubpos/internal/domain/menu"
	"clubpos/internal/transport/http/api"
	"clubpos/internal/transport/http/middleware"
)

type Handler struct {
	Store *menu.Store
}

func NewHandler(store *menu.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/menu", func(r chi.Router) {
		r.Get("/categories", h.handleListCategories)
		r.Post("/categories", h.handleCreateCategory)
		r.Put("/categories/{categoryID}", h.handleUpdateCategory)
		r.Delete("/categories/{categoryID}", h.handleDeleteCategory)
		r.Get("/items", h.handleListItems)
		r.Post("/items", h.handleCreateItem)
		r.Get("/items/{itemID}", h.handleGetItem)
		r.Put("/items/{itemID}", h.handleUpdateItem)
		r.Delete("/items/{itemID}", h.handleDeleteItem)
	})
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategories(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "categories_failed", "failed to list categories", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, categories, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "category name is required", middleware.GetRequestID(r.Context()))
		return
	}
	c, err := h.Store.CreateCategory(r.Context(), payload.Name)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "category_create_failed", "failed to create category", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, c, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var payload menu.Category
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "categoryID")
	if err := h.Store.UpdateCategory(r.Context(), payload); err != nil {
		if errors.Is(err, menu.ErrCategoryNotFound) {
			api.Fail(w, http.StatusNotFound, "category_not_found", "category not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "category_update_failed", "failed to update category", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteCategory(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
		if errors.Is(err, menu.ErrCategoryNotFound) {
			api.Fail(w, http.StatusNotFound, "category_not_found", "category not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "category_delete_failed", "failed to delete category", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListItems(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "items_failed", "failed to list menu items", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, items, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Store.GetItem(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		if errors.Is(err, menu.ErrItemNotFound) {
			api.Fail(w, http.StatusNotFound, "item_not_found", "menu item not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "item_failed", "failed to load menu item", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, item, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var payload menu.Item
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	item, err := h.Store.CreateItem(r.Context(), payload)
	if err != nil {
		h.failItemWrite(w, r, err, "item_create_failed", "failed to create menu item")
		return
	}
	api.Created(w, item, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var payload menu.Item
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "itemID")
	if err := h.Store.UpdateItem(r.Context(), payload); err != nil {
		h.failItemWrite(w, r, err, "item_update_failed", "failed to update menu item")
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteItem(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		if errors.Is(err, menu.ErrItemNotFound) {
			api.Fail(w, http.StatusNotFound, "item_not_found", "menu item not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "item_delete_failed", "failed to delete menu item", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failItemWrite(w http.ResponseWriter, r *http.Request, err error, code, fallback string) {
	switch {
	case errors.Is(err, menu.ErrItemNotFound):
		api.Fail(w, http.StatusNotFound, "item_not_found", "menu item not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, menu.ErrInvalidPrice), errors.Is(err, menu.ErrInvalidBackRate):
		api.Fail(w, http.StatusBadRequest, "invalid_item", err.Error(), middleware.GetRequestID(r.Context()))
	case errors.Is(err, menu.ErrCategoryNotFound):
		api.Fail(w, http.StatusBadRequest, "category_not_found", "category not found", middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, code, fallback, middleware.GetRequestID(r.Context()))
	}
}
