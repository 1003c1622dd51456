package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dsandoval/suds/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/sales", h.sales)
}

type rowResponse struct {
	SaleID uuid.UUID       `json:"sale_id"`
	Date   time.Time       `json:"date"`
	Client string          `json:"client"`
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
}

type reportResponse struct {
	Rows       []rowResponse   `json:"rows"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

func (h *Handler) sales(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time

	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			from = &t
		}
	}

	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			to = &t
		}
	}

	rep, err := h.svc.SalesBetween(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("csv") == "1" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=sales_report.csv")

		if err := h.svc.WriteCSV(w, rep); err != nil {
			slog.Error("failed to write report csv", "error", err)
		}

		return
	}

	resp := reportResponse{
		Rows:       make([]rowResponse, len(rep.Rows)),
		GrandTotal: rep.GrandTotal,
	}
	for i, row := range rep.Rows {
		resp.Rows[i] = rowResponse{
			SaleID: row.SaleID,
			Date:   row.Date,
			Client: row.Client,
			Status: string(row.Status),
			Total:  row.Total,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
