package web

import (
	"net/http"

	"github.com/erazemk/cardledger/internal/masterdata"
	"github.com/erazemk/cardledger/internal/sales"
	webembed "github.com/erazemk/cardledger/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(svc *sales.Service, master *masterdata.File) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Service:   svc,
		Master:    master,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.EntryPage)
	mux.HandleFunc("POST /{$}", s.EntrySubmit)

	mux.HandleFunc("GET /records", s.RecordsPage)
	mux.HandleFunc("POST /records/{id}/delete", s.RecordDeleteSubmit)

	mux.HandleFunc("GET /inventory", s.InventoryPage)
	mux.HandleFunc("GET /reports", s.ReportsPage)

	mux.HandleFunc("GET /cards", s.CardsPage)
	mux.HandleFunc("POST /cards", s.CardsSubmit)
	mux.HandleFunc("POST /master", s.MasterSubmit)

	return mux, nil
}
