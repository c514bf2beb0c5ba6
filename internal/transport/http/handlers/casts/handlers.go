package casthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clubpos/internal/domain/cast"
	"clubpos/internal/transport/http/api"
	"clubpos/internal/transport/http/middleware"
)

type Handler struct {
	Store *cast.Store
}

func NewHandler(store *cast.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/casts", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{castID}", h.handleGet)
		r.Put("/{castID}", h.handleUpdate)
		r.Delete("/{castID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var (
		casts []cast.Cast
		err   error
	)
	if r.URL.Query().Get("active") == "true" {
		casts, err = h.Store.ListActive(r.Context())
	} else {
		casts, err = h.Store.List(r.Context())
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "casts_failed", "failed to list casts", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, casts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.Store.Get(r.Context(), chi.URLParam(r, "castID"))
	if err != nil {
		if errors.Is(err, cast.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "cast_not_found", "cast not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "cast_failed", "failed to load cast", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, c, middleware.GetRequestID(r.Context()))
}

type castPayload struct {
	Name       string  `json:"name"`
	HourlyWage float64 `json:"hourlyWage"`
	IsActive   *bool   `json:"isActive"`
}

func (p castPayload) validate() string {
	if p.Name == "" {
		return "name is required"
	}
	if p.HourlyWage < 0 {
		return "hourly wage must not be negative"
	}
	return ""
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload castPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if msg := payload.validate(); msg != "" {
		api.Fail(w, http.StatusBadRequest, "invalid_cast", msg, middleware.GetRequestID(r.Context()))
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}
	c, err := h.Store.Create(r.Context(), payload.Name, payload.HourlyWage, active)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cast_create_failed", "failed to create cast", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, c, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload castPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if msg := payload.validate(); msg != "" {
		api.Fail(w, http.StatusBadRequest, "invalid_cast", msg, middleware.GetRequestID(r.Context()))
		return
	}
	c := cast.Cast{ID: chi.URLParam(r, "castID"), Name: payload.Name, HourlyWage: payload.HourlyWage, IsActive: true}
	if payload.IsActive != nil {
		c.IsActive = *payload.IsActive
	}
	if err := h.Store.Update(r.Context(), c); err != nil {
		if errors.Is(err, cast.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "cast_not_found", "cast not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "cast_update_failed", "failed to update cast", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, c, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "castID")); err != nil {
		if errors.Is(err, cast.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "cast_not_found", "cast not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "cast_delete_failed", "failed to delete cast", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}
