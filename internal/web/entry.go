package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erazemk/cardledger/internal/masterdata"
	"github.com/erazemk/cardledger/internal/model"
	"github.com/erazemk/cardledger/internal/sales"
)

// entryForm keeps the submitted values as typed so they can be shown again.
type entryForm struct {
	DateTime   string
	CardNumber string
	CardType   string
	Machine    string
	Vendor     string
	Model      string
	Amount     string
	Type       string
}

func readEntryForm(r *http.Request) entryForm {
	return entryForm{
		DateTime:   strings.TrimSpace(r.FormValue("date_time")),
		CardNumber: strings.TrimSpace(r.FormValue("card_number")),
		CardType:   r.FormValue("card_type"),
		Machine:    r.FormValue("machine"),
		Vendor:     r.FormValue("vendor"),
		Model:      r.FormValue("model"),
		Amount:     strings.TrimSpace(r.FormValue("amount")),
		Type:       r.FormValue("type"),
	}
}

func (f entryForm) input() (sales.Input, error) {
	in := sales.Input{
		CardNumber: f.CardNumber,
		CardType:   f.CardType,
		Machine:    f.Machine,
		Vendor:     f.Vendor,
		Model:      f.Model,
		Type:       model.SaleType(f.Type),
	}
	if f.DateTime != "" {
		t, err := time.ParseInLocation(model.DateTimeLayout, f.DateTime, time.Local)
		if err != nil {
			return sales.Input{}, &sales.MalformedInputError{Field: "date_time", Reason: "invalid date and time"}
		}
		in.DateTime = t
	}
	if f.Amount == "" {
		return sales.Input{}, &sales.MalformedInputError{Field: "amount", Reason: "required"}
	}
	amount, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return sales.Input{}, &sales.MalformedInputError{Field: "amount", Reason: "not a number"}
	}
	in.Amount = amount
	return in, nil
}

type entryPage struct {
	PageData
	Form      entryForm
	Master    masterdata.Document
	SaleTypes []model.SaleType
	Known     []string
}

func (s *Server) renderEntry(w http.ResponseWriter, status int, data entryPage) {
	data.Title = "New sale"
	data.Active = "entry"
	data.Master = s.Master.Get()
	data.SaleTypes = []model.SaleType{model.SaleTypeInstant, model.SaleTypeEMI}
	s.Templates.RenderStatus(w, status, "entry.html", &data)
}

// EntryPage handles GET /.
func (s *Server) EntryPage(w http.ResponseWriter, r *http.Request) {
	data := entryPage{
		Form: entryForm{
			DateTime: time.Now().Format(model.DateTimeLayout),
			Type:     string(model.SaleTypeInstant),
		},
	}
	if r.URL.Query().Get("saved") == "1" {
		data.Success = "Sale saved."
	}
	s.renderEntry(w, http.StatusOK, data)
}

// EntrySubmit handles POST /.
func (s *Server) EntrySubmit(w http.ResponseWriter, r *http.Request) {
	form := readEntryForm(r)
	data := entryPage{Form: form}

	in, err := form.input()
	if err == nil {
		_, err = s.Service.Create(r.Context(), in)
	}
	if err == nil {
		http.Redirect(w, r, "/?saved=1", http.StatusSeeOther)
		return
	}

	var invalid *sales.ValidationError
	switch {
	case errors.Is(err, sales.ErrMalformed):
		data.Error = err.Error()
		s.renderEntry(w, http.StatusBadRequest, data)
	case errors.As(err, &invalid):
		data.Error = invalid.Error()
		data.Known = invalid.Known
		s.renderEntry(w, http.StatusUnprocessableEntity, data)
	default:
		slog.Error("failed to create sale", "error", err)
		data.Error = "The sale could not be saved."
		s.renderEntry(w, http.StatusInternalServerError, data)
	}
}
