package api

import (
	"net/http"
	"time"

	"github.com/erazemk/cardledger/internal/model"
	"github.com/erazemk/cardledger/internal/reconcile"
	"github.com/erazemk/cardledger/internal/sales"
)

// SalesHandler handles sale record endpoints.
type SalesHandler struct {
	Service *sales.Service
}

// List handles GET /api/sales.
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
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

	list := reconcile.FilterSales(all, f)
	if list == nil {
		list = []model.Sale{}
	}
	jsonResponse(w, http.StatusOK, list)
}

// Create handles POST /api/sales.
func (h *SalesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in sales.Input
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sale, err := h.Service.Create(r.Context(), in)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, sale)
}

// Update handles PUT /api/sales/{id}.
func (h *SalesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in sales.Input
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sale, err := h.Service.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, sale)
}

// Delete handles DELETE /api/sales/{id}.
func (h *SalesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
