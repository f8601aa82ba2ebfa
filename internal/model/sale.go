package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleType is the payment plan of a sale.
type SaleType string

// Sale types.
const (
	SaleTypeInstant SaleType = "INSTANT"
	SaleTypeEMI     SaleType = "EMI"
)

// Valid reports whether t is a known sale type.
func (t SaleType) Valid() bool {
	return t == SaleTypeInstant || t == SaleTypeEMI
}

// Sale represents a phone sale paid with an inventory card.
type Sale struct {
	ID         string          `json:"id" db:"id"`
	DateTime   time.Time       `json:"date_time" db:"date_time"`
	CardNumber string          `json:"card_number" db:"card_number"`
	CardType   string          `json:"card_type" db:"card_type"`
	Machine    string          `json:"machine" db:"machine"`
	Vendor     string          `json:"vendor" db:"vendor"`
	Model      string          `json:"model" db:"model"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Type       SaleType        `json:"type" db:"type"`
}
