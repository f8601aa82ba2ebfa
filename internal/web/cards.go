package web

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/erazemk/cardledger/internal/masterdata"
	"github.com/erazemk/cardledger/internal/model"
	"github.com/erazemk/cardledger/internal/sales"
)

type cardsPage struct {
	PageData
	CardsText string
	Count     int
	Master    masterdata.Document
}

func (s *Server) renderCards(w http.ResponseWriter, r *http.Request, status int, data cardsPage) {
	data.Title = "Cards"
	data.Active = "cards"
	data.Master = s.Master.Get()
	if data.CardsText == "" {
		cards, err := s.Service.Cards(r.Context())
		if err != nil {
			slog.Error("failed to list cards", "error", err)
		}
		data.CardsText = formatCards(cards)
		data.Count = len(cards)
	}
	s.Templates.RenderStatus(w, status, "cards.html", &data)
}

// CardsPage handles GET /cards.
func (s *Server) CardsPage(w http.ResponseWriter, r *http.Request) {
	var data cardsPage
	switch r.URL.Query().Get("saved") {
	case "cards":
		data.Success = "Card list saved."
	case "master":
		data.Success = "Form lists saved."
	}
	s.renderCards(w, r, http.StatusOK, data)
}

// CardsSubmit handles POST /cards.
func (s *Server) CardsSubmit(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("cards")

	cards, err := parseCards(text)
	if err == nil {
		err = s.Service.ReplaceCards(r.Context(), cards)
	}
	switch {
	case err == nil:
		http.Redirect(w, r, "/cards?saved=cards", http.StatusSeeOther)
	case errors.Is(err, sales.ErrMalformed):
		s.renderCards(w, r, http.StatusBadRequest, cardsPage{PageData: PageData{Error: err.Error()}, CardsText: text})
	default:
		slog.Error("failed to replace cards", "error", err)
		s.renderCards(w, r, http.StatusInternalServerError, cardsPage{PageData: PageData{Error: "The card list could not be saved."}, CardsText: text})
	}
}

// MasterSubmit handles POST /master.
func (s *Server) MasterSubmit(w http.ResponseWriter, r *http.Request) {
	doc := masterdata.Document{
		CardTypes: strings.Split(r.FormValue("card_types"), "\n"),
		Machines:  strings.Split(r.FormValue("machines"), "\n"),
		Vendors:   strings.Split(r.FormValue("vendors"), "\n"),
		Models:    strings.Split(r.FormValue("models"), "\n"),
	}
	saved, err := s.Master.Set(doc)
	if err != nil {
		slog.Error("failed to save master data", "error", err)
		s.renderCards(w, r, http.StatusInternalServerError, cardsPage{PageData: PageData{Error: "The form lists could not be saved."}})
		return
	}
	slog.Info("master data updated", "version", saved.Version())
	http.Redirect(w, r, "/cards?saved=master", http.StatusSeeOther)
}

// parseCards reads "number,type" lines. Blank lines are skipped.
func parseCards(text string) ([]model.Card, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var cards []model.Card
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return cards, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &sales.MalformedInputError{Field: fmt.Sprintf("line %d", perr.Line), Reason: "expected number,type"}
			}
			return nil, fmt.Errorf("reading card list: %w", err)
		}
		cards = append(cards, model.Card{Number: rec[0], Type: rec[1]})
	}
}

func formatCards(cards []model.Card) string {
	var b strings.Builder
	for _, c := range cards {
		fmt.Fprintf(&b, "%s,%s\n", c.Number, c.Type)
	}
	return b.String()
}
