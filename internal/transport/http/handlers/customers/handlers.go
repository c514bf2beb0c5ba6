package customerhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clubpos/internal/domain/customer"
	"clubpos/internal/transport/http/api"
	"clubpos/internal/transport/http/middleware"
)

type Handler struct {
	Store *customer.Store
}

func NewHandler(store *customer.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.handleList)
	})
}

// handleList returns all customers, or a name-filtered subset when the
// search query parameter is present.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var (
		customers []customer.Customer
		err       error
	)
	if q := r.URL.Query().Get("search"); q != "" {
		customers, err = h.Store.SearchByName(r.Context(), q)
	} else {
		customers, err = h.Store.List(r.Context())
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "customers_failed", "failed to list customers", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, customers, middleware.GetRequestID(r.Context()))
}
