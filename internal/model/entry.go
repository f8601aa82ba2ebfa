package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardStatus is the reconciled status of an inventory card.
type CardStatus string

// Card statuses.
const (
	StatusUsed      CardStatus = "Used"
	StatusAvailable CardStatus = "Available"
)

// Valid reports whether s is a known status.
func (s CardStatus) Valid() bool {
	return s == StatusUsed || s == StatusAvailable
}

// Entry is one row of the reconciled card view. Used rows carry the
// matching sale; Available rows leave the sale fields empty.
type Entry struct {
	CardNumber string           `json:"card_number"`
	CardType   string           `json:"card_type"`
	Status     CardStatus       `json:"status"`
	SaleID     string           `json:"sale_id,omitempty"`
	DateTime   *time.Time       `json:"date_time,omitempty"`
	Vendor     string           `json:"vendor,omitempty"`
	Model      string           `json:"model,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

// Placeholder is shown in place of sale fields on Available rows.
const Placeholder = "-"

// DisplayFields returns the entry's fields as rendered in tables, in
// column order.
func (e Entry) DisplayFields() []string {
	if e.Status != StatusUsed {
		return []string{e.CardNumber, e.CardType, string(e.Status), Placeholder, Placeholder, Placeholder, Placeholder}
	}
	ts, amount := Placeholder, Placeholder
	if e.DateTime != nil {
		ts = FormatDateTime(*e.DateTime)
	}
	if e.Amount != nil {
		amount = e.Amount.StringFixed(2)
	}
	return []string{e.CardNumber, e.CardType, string(e.Status), ts, e.Vendor, e.Model, amount}
}

// DisplayFields returns the sale's fields as rendered in the records table.
func (s Sale) DisplayFields() []string {
	return []string{
		FormatDateTime(s.DateTime),
		s.CardNumber,
		s.CardType,
		s.Machine,
		s.Vendor,
		s.Model,
		s.Amount.StringFixed(2),
		string(s.Type),
	}
}
