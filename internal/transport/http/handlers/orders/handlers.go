package orderhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clubpos/internal/domain/menu"
	"clubpos/internal/domain/order"
	"clubpos/internal/domain/table"
	"clubpos/internal/transport/http/api"
	"clubpos/internal/transport/http/middleware"
)

type Handler struct {
	Service *order.Service
	Store   *order.Store
}

func NewHandler(service *order.Service, store *order.Store) *Handler {
	return &Handler{Service: service, Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.handleListActive)
		r.Post("/", h.handleOpen)
		r.Get("/table/{tableID}", h.handleListByTable)
		r.Get("/{orderID}", h.handleGet)
		r.Post("/{orderID}/items", h.handleAddItem)
		r.Delete("/{orderID}/items", h.handleRemoveItem)
		r.Post("/{orderID}/recompute", h.handleRecompute)
		r.Post("/{orderID}/checkout", h.handleCheckout)
		r.Post("/{orderID}/cancel", h.handleCancel)
	})
}

func (h *Handler) handleListActive(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Store.ListActive(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "orders_failed", "failed to list orders", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, orders, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListByTable(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Store.ListByTable(r.Context(), chi.URLParam(r, "tableID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "orders_failed", "failed to list orders", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, orders, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	o, err := h.Store.Get(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "order_not_found", "order not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "order_failed", "failed to load order", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, o, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleOpen(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TableID string        `json:"tableId"`
		Guests  []order.Guest `json:"guests"`
		Notes   string        `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	o, err := h.Service.Open(r.Context(), payload.TableID, payload.Guests, payload.Notes, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyGuestList):
			api.Fail(w, http.StatusBadRequest, "empty_guest_list", "at least one guest is required", middleware.GetRequestID(r.Context()))
		case errors.Is(err, table.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "table_not_found", "table not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, table.ErrNotAvailable):
			api.Fail(w, http.StatusConflict, "table_not_available", "table is not available", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "order_open_failed", "failed to open order", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, o, middleware.GetRequestID(r.Context()))
}

type lineRef struct {
	MenuItemID string `json:"menuItemId"`
	BackCastID string `json:"backCastId"`
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var payload lineRef
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.MenuItemID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "menuItemId is required", middleware.GetRequestID(r.Context()))
		return
	}
	o, err := h.Service.AddItem(r.Context(), chi.URLParam(r, "orderID"), payload.MenuItemID, payload.BackCastID, time.Now())
	if err != nil {
		h.failOrderWrite(w, r, err, "order_add_item_failed", "failed to add item")
		return
	}
	api.Success(w, o, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	var payload lineRef
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.MenuItemID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "menuItemId is required", middleware.GetRequestID(r.Context()))
		return
	}
	o, err := h.Service.RemoveItem(r.Context(), chi.URLParam(r, "orderID"), payload.MenuItemID, payload.BackCastID, time.Now())
	if err != nil {
		h.failOrderWrite(w, r, err, "order_remove_item_failed", "failed to remove item")
		return
	}
	api.Success(w, o, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRecompute(w http.ResponseWriter, r *http.Request) {
	o, err := h.Service.Recompute(r.Context(), chi.URLParam(r, "orderID"), time.Now())
	if err != nil {
		h.failOrderWrite(w, r, err, "order_recompute_failed", "failed to recompute order")
		return
	}
	api.Success(w, o, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	o, err := h.Service.Checkout(r.Context(), chi.URLParam(r, "orderID"), time.Now())
	if err != nil {
		h.failOrderWrite(w, r, err, "order_checkout_failed", "failed to check out order")
		return
	}
	api.Success(w, o, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	o, err := h.Service.Cancel(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		h.failOrderWrite(w, r, err, "order_cancel_failed", "failed to cancel order")
		return
	}
	api.Success(w, o, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failOrderWrite(w http.ResponseWriter, r *http.Request, err error, code, fallback string) {
	switch {
	case errors.Is(err, order.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "order_not_found", "order not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, order.ErrNotActive):
		api.Fail(w, http.StatusConflict, "order_not_active", "order is not active", middleware.GetRequestID(r.Context()))
	case errors.Is(err, menu.ErrItemNotFound):
		api.Fail(w, http.StatusNotFound, "item_not_found", "menu item not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, order.ErrUnavailable):
		api.Fail(w, http.StatusBadRequest, "item_unavailable", "menu item is not available", middleware.GetRequestID(r.Context()))
	case errors.Is(err, order.ErrItemNoBack):
		api.Fail(w, http.StatusBadRequest, "item_no_back", "menu item does not pay a cast back", middleware.GetRequestID(r.Context()))
	case errors.Is(err, order.ErrLineNotFound):
		api.Fail(w, http.StatusNotFound, "line_not_found", "order line not found", middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, code, fallback, middleware.GetRequestID(r.Context()))
	}
}
