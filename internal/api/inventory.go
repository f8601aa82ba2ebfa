package api

import (
	"net/http"
	"time"

	"github.com/erazemk/cardledger/internal/sales"
)

// InventoryHandler handles the reconciled card view.
type InventoryHandler struct {
	Service *sales.Service
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
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
	jsonResponse(w, http.StatusOK, view)
}
