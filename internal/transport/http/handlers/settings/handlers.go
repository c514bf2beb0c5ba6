package settingshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clubpos/internal/domain/settings"
	"clubpos/internal/transport/http/api"
	"clubpos/internal/transport/http/middleware"
)

type Handler struct {
	Store *settings.Store
}

func NewHandler(store *settings.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Put("/", h.handleUpdate)
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.Store.Get(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_failed", "failed to load settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, s, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload settings.StoreSettings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if err := payload.Validate(); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_settings", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Store.Update(r.Context(), payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_update_failed", "failed to update settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}
