package api

import (
	"net/http"

	"github.com/erazemk/cardledger/internal/report"
	"github.com/erazemk/cardledger/internal/sales"
)

// ReportsHandler handles the aggregated reports view.
type ReportsHandler struct {
	Service *sales.Service
}

// Summary handles GET /api/reports.
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	cards, list, err := h.Service.Snapshot(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, report.Summarize(cards, list))
}
