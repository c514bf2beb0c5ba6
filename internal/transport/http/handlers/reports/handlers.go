package reporthandler

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"clubpos/internal/domain/report"
	"clubpos/internal/transport/http/api"
	"clubpos/internal/transport/http/middleware"
	"clubpos/internal/transport/http/shared"
)

type Handler struct {
	Service *report.Service
}

func NewHandler(service *report.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/daily", h.handleDaily)
		r.Post("/daily/save", h.handleSave)
		r.Post("/daily/close", h.handleClose)
		r.Get("/daily/export", h.handleDailyExport)
		r.Get("/monthly", h.handleMonthly)
		r.Get("/monthly/export", h.handleMonthlyExport)
		r.Get("/analytics", h.handleAnalytics)
	})
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date query parameter is required as YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	daily, err := h.Service.Preview(r.Context(), date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build daily report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, daily, middleware.GetRequestID(r.Context()))
}

func (h *Handler) decodeDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	var payload struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return time.Time{}, false
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return time.Time{}, false
	}
	return date, true
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	date, ok := h.decodeDate(w, r)
	if !ok {
		return
	}
	daily, err := h.Service.Save(r.Context(), date)
	if err != nil {
		h.failReportWrite(w, r, err, "report_save_failed", "failed to save daily report")
		return
	}
	api.Success(w, daily, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	date, ok := h.decodeDate(w, r)
	if !ok {
		return
	}
	daily, err := h.Service.Close(r.Context(), date)
	if err != nil {
		h.failReportWrite(w, r, err, "report_close_failed", "failed to close daily report")
		return
	}
	api.Success(w, daily, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDailyExport(w http.ResponseWriter, r *http.Request) {
	date, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date query parameter is required as YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	daily, err := h.Service.Preview(r.Context(), date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build daily report", middleware.GetRequestID(r.Context()))
		return
	}
	names, err := h.Service.CastNames(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load cast names", middleware.GetRequestID(r.Context()))
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "csv"
	}
	day := date.Format("2006-01-02")

	if format == "pdf" {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=daily-report-%s.pdf", day))
		if err := report.WriteDailyPDF(w, *daily, names); err != nil {
			log.Printf("daily report pdf write failed: %v", err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=daily-report-%s.csv", day))
	writeCSV(w, report.DailyCSVRows(*daily, names))
}

func (h *Handler) handleMonthly(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parsePeriod(w, r)
	if !ok {
		return
	}
	monthly, err := h.Service.Monthly(r.Context(), year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build monthly report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, monthly, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMonthlyExport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.parsePeriod(w, r)
	if !ok {
		return
	}
	monthly, err := h.Service.Monthly(r.Context(), year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build monthly report", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=monthly-report-%04d-%02d.csv", year, month))
	writeCSV(w, report.MonthlyCSVRows(*monthly))
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	from, err := shared.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "from query parameter is required as YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	to, err := shared.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "to query parameter is required as YYYY-MM-DD", middleware.GetRequestID(r.Context()))
		return
	}
	period := r.URL.Query().Get("period")
	if period == "" {
		period = report.PeriodDaily
	}
	series, err := h.Service.Series(r.Context(), from, to, period)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "analytics_failed", "failed to build sales series", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, series, middleware.GetRequestID(r.Context()))
}

func (h *Handler) parsePeriod(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "year query parameter is required", middleware.GetRequestID(r.Context()))
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "month query parameter must be 1-12", middleware.GetRequestID(r.Context()))
		return 0, 0, false
	}
	return year, month, true
}

func (h *Handler) failReportWrite(w http.ResponseWriter, r *http.Request, err error, code, fallback string) {
	switch {
	case errors.Is(err, report.ErrClosed):
		api.Fail(w, http.StatusConflict, "report_closed", "daily report is closed", middleware.GetRequestID(r.Context()))
	case errors.Is(err, report.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "report_not_found", "daily report not found", middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, code, fallback, middleware.GetRequestID(r.Context()))
	}
}

func writeCSV(w http.ResponseWriter, rows [][]string) {
	writer := csv.NewWriter(w)
	for _, row := range rows {
		if len(row) == 0 {
			// csv.Writer rejects empty records; emit a bare newline
			// to keep the section spacing.
			writer.Flush()
			if _, err := w.Write([]byte("\n")); err != nil {
				log.Printf("report csv spacer write failed: %v", err)
			}
			continue
		}
		if err := writer.Write(row); err != nil {
			log.Printf("report csv row write failed: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("report csv flush failed: %v", err)
	}
}
