package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/erazemk/cardledger/internal/export"
	"github.com/erazemk/cardledger/internal/model"
	"github.com/erazemk/cardledger/internal/reconcile"
	"github.com/erazemk/cardledger/internal/sales"
)

// Content types for downloads.
const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler serves CSV and XLSX downloads. Each honours the same query
// filters as the matching list endpoint.
type ExportHandler struct {
	Service *sales.Service
}

// SalesCSV handles GET /api/export/sales.csv.
func (h *ExportHandler) SalesCSV(w http.ResponseWriter, r *http.Request) {
	h.sales(w, r, "sales.csv", contentTypeCSV, export.SalesCSV)
}

// SalesXLSX handles GET /api/export/sales.xlsx.
func (h *ExportHandler) SalesXLSX(w http.ResponseWriter, r *http.Request) {
	h.sales(w, r, "sales.xlsx", contentTypeXLSX, export.SalesXLSX)
}

// InventoryCSV handles GET /api/export/inventory.csv.
func (h *ExportHandler) InventoryCSV(w http.ResponseWriter, r *http.Request) {
	h.inventory(w, r, "inventory.csv", contentTypeCSV, export.EntriesCSV)
}

// InventoryXLSX handles GET /api/export/inventory.xlsx.
func (h *ExportHandler) InventoryXLSX(w http.ResponseWriter, r *http.Request) {
	h.inventory(w, r, "inventory.xlsx", contentTypeXLSX, export.EntriesXLSX)
}

func (h *ExportHandler) sales(w http.ResponseWriter, r *http.Request, name, contentType string, write func(io.Writer, []model.Sale) error) {
	f, err := reconcile.ParseSaleFilter(r.URL.Query(), time.Local)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	all, err := h.Service.List(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, reconcile.FilterSales(all, f)); err != nil {
		slog.Error("failed to export sales", "format", contentType, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	download(w, name, contentType, buf.Bytes())
}

func (h *ExportHandler) inventory(w http.ResponseWriter, r *http.Request, name, contentType string, write func(io.Writer, []model.Entry) error) {
	q, err := sales.ParseInventoryQuery(r.URL.Query(), time.Local)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := h.Service.Inventory(r.Context(), q)
	if err != nil {
		serviceError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, view.Entries); err != nil {
		slog.Error("failed to export inventory", "format", contentType, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	download(w, name, contentType, buf.Bytes())
}

// download writes data as an attachment. Encoding happens into a buffer
// first so a failure can still produce an error status.
func download(w http.ResponseWriter, name, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write download", "file", name, "error", err)
	}
}
