package shifthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clubpos/internal/domain/shift"
	"clubpos/internal/transport/http/api"
	"clubpos/internal/transport/http/middleware"
	"clubpos/internal/transport/http/shared"
)

type Handler struct {
	Store *shift.Store
}

func NewHandler(store *shift.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shifts", func(r chi.Router) {
		r.Get("/", h.handleListByDate)
		r.Post("/", h.handleUpsert)
		r.Get("/cast/{castID}", h.handleListByCast)
		r.Delete("/{shiftID}", h.handleDelete)
	})
}

func (h *Handler) handleListByDate(w http.ResponseWriter, r *http.Request) {
	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date query parameter is required as YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	shifts, err := h.Store.ListByDate(r.Context(), date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "shifts_failed", "failed to list shifts", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, shifts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListByCast(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Store.ListByCast(r.Context(), chi.URLParam(r, "castID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "shifts_failed", "failed to list shifts", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, shifts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CastID    string  `json:"castId"`
		Date      string  `json:"date"`
		StartTime string  `json:"startTime"`
		EndTime   *string `json:"endTime"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.CastID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_shift", "castId is required", middleware.GetRequestID(r.Context()))
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	s, err := h.Store.Upsert(r.Context(), payload.CastID, date, payload.StartTime, payload.EndTime)
	if err != nil {
		if errors.Is(err, shift.ErrBadClock) {
			api.Fail(w, http.StatusBadRequest, "invalid_time", "times must be HH:MM", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "shift_save_failed", "failed to save shift", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, s, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "shiftID")); err != nil {
		if errors.Is(err, shift.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "shift_not_found", "shift not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "shift_delete_failed", "failed to delete shift", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}
