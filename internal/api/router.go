package api

import (
	"net/http"

	"github.com/erazemk/cardledger/internal/masterdata"
	"github.com/erazemk/cardledger/internal/sales"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(svc *sales.Service, master *masterdata.File) http.Handler {
	mux := http.NewServeMux()

	salesHandler := &SalesHandler{Service: svc}
	cardsHandler := &CardsHandler{Service: svc}
	inventoryHandler := &InventoryHandler{Service: svc}
	reportsHandler := &ReportsHandler{Service: svc}
	masterHandler := &MasterHandler{File: master}
	exportHandler := &ExportHandler{Service: svc}

	// Sales.
	mux.HandleFunc("GET /api/sales", salesHandler.List)
	mux.HandleFunc("POST /api/sales", salesHandler.Create)
	mux.HandleFunc("PUT /api/sales/{id}", salesHandler.Update)
	mux.HandleFunc("DELETE /api/sales/{id}", salesHandler.Delete)

	// Card master list.
	mux.HandleFunc("GET /api/cards", cardsHandler.List)
	mux.HandleFunc("PUT /api/cards", cardsHandler.Replace)
	mux.HandleFunc("GET /api/cards/{number}/types", cardsHandler.Types)

	// Reconciled views.
	mux.HandleFunc("GET /api/inventory", inventoryHandler.List)
	mux.HandleFunc("GET /api/reports", reportsHandler.Summary)

	// Master data.
	mux.HandleFunc("GET /api/master", masterHandler.Get)
	mux.HandleFunc("PUT /api/master", masterHandler.Put)

	// Downloads.
	mux.HandleFunc("GET /api/export/sales.csv", exportHandler.SalesCSV)
	mux.HandleFunc("GET /api/export/sales.xlsx", exportHandler.SalesXLSX)
	mux.HandleFunc("GET /api/export/inventory.csv", exportHandler.InventoryCSV)
	mux.HandleFunc("GET /api/export/inventory.xlsx", exportHandler.InventoryXLSX)

	return mux
}
