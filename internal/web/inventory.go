package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/erazemk/cardledger/internal/sales"
)

// InventoryPage handles GET /inventory.
func (s *Server) InventoryPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := struct {
		PageData
		Query url.Values
		View  *sales.InventoryView
	}{
		PageData: PageData{Title: "Card inventory", Active: "inventory"},
		Query:    q,
		View:     &sales.InventoryView{},
	}

	iq, err := sales.ParseInventoryQuery(q, time.Local)
	if err != nil {
		data.Error = err.Error()
		s.Templates.RenderStatus(w, http.StatusBadRequest, "inventory.html", &data)
		return
	}

	view, err := s.Service.Inventory(r.Context(), iq)
	if err != nil {
		slog.Error("failed to build inventory", "error", err)
		data.Error = "Inventory could not be loaded."
	} else {
		data.View = view
	}

	s.Templates.Render(w, "inventory.html", &data)
}
