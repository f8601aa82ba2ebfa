package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/cardledger/internal/report"
)

type totalsGroup struct {
	Title string
	Rows  []report.Total
}

// ReportsPage handles GET /reports.
func (s *Server) ReportsPage(w http.ResponseWriter, r *http.Request) {
	cards, list, err := s.Service.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to load reports", "error", err)
	}

	summary := report.Summarize(cards, list)
	s.Templates.Render(w, "reports.html", &struct {
		PageData
		Summary report.Summary
		Groups  []totalsGroup
	}{
		PageData: PageData{Title: "Reports", Active: "reports"},
		Summary:  summary,
		Groups: []totalsGroup{
			{Title: "By card type", Rows: summary.ByCardType},
			{Title: "By vendor", Rows: summary.ByVendor},
			{Title: "By model", Rows: summary.ByModel},
		},
	})
}
