package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erazemk/cardledger/internal/model"
	"github.com/erazemk/cardledger/internal/reconcile"
	"github.com/erazemk/cardledger/internal/report"
	"github.com/erazemk/cardledger/internal/sales"
)

// RecordsPage handles GET /records.
func (s *Server) RecordsPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := struct {
		PageData
		Query url.Values
		Sales []model.Sale
		Total decimal.Decimal
	}{
		PageData: PageData{Title: "Sales records", Active: "records"},
		Query:    q,
	}

	f, err := reconcile.ParseSaleFilter(q, time.Local)
	if err != nil {
		data.Error = err.Error()
		s.Templates.RenderStatus(w, http.StatusBadRequest, "records.html", &data)
		return
	}

	all, err := s.Service.List(r.Context())
	if err != nil {
		slog.Error("failed to list sales", "error", err)
		data.Error = "Sales could not be loaded."
	}
	data.Sales = reconcile.FilterSales(all, f)
	data.Total = report.TotalAmount(data.Sales)
	if q.Get("deleted") == "1" {
		data.Success = "Sale deleted."
	}

	s.Templates.Render(w, "records.html", &data)
}

// RecordDeleteSubmit handles POST /records/{id}/delete.
func (s *Server) RecordDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	err := s.Service.Delete(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, sales.ErrNotFound):
		http.Error(w, "sale not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "failed to delete", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/records?deleted=1", http.StatusSeeOther)
}
