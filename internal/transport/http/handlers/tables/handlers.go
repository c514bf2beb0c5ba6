package tablehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clubpos/internal/domain/table"
	"clubpos/internal/transport/http/api"
	"clubpos/internal/transport/http/middleware"
)

type Handler struct {
	Store *table.Store
}

func NewHandler(store *table.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tables", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{tableID}", h.handleGet)
		r.Put("/{tableID}/status", h.handleUpdateStatus)
		r.Delete("/{tableID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "tables_failed", "failed to list tables", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, tables, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	t, err := h.Store.Get(r.Context(), chi.URLParam(r, "tableID"))
	if err != nil {
		if errors.Is(err, table.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "table_not_found", "table not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "table_failed", "failed to load table", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, t, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Number int `json:"number"`
		Seats  int `json:"seats"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Number <= 0 || payload.Seats <= 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_table", "number and seats must be positive", middleware.GetRequestID(r.Context()))
		return
	}
	t, err := h.Store.Create(r.Context(), payload.Number, payload.Seats)
	if err != nil {
		if errors.Is(err, table.ErrDuplicateNumber) {
			api.Fail(w, http.StatusConflict, "duplicate_table_number", "table number already exists", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "table_create_failed", "failed to create table", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, t, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if !table.ValidStatus(payload.Status) {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown table status", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Store.UpdateStatus(r.Context(), chi.URLParam(r, "tableID"), payload.Status); err != nil {
		if errors.Is(err, table.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "table_not_found", "table not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "table_update_failed", "failed to update table", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": payload.Status}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "tableID")); err != nil {
		switch {
		case errors.Is(err, table.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "table_not_found", "table not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, table.ErrOccupied):
			api.Fail(w, http.StatusConflict, "table_occupied", "occupied tables cannot be deleted", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "table_delete_failed", "failed to delete table", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}
