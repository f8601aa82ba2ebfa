// Package report aggregates sale amounts for the reports view.
package report

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/erazemk/cardledger/internal/model"
)

// Total is the summed amount for one group key.
type Total struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// AggregateByKey sums sale amounts per key, ordered by descending total.
// Equal totals keep the order in which their keys were first seen.
func AggregateByKey(sales []model.Sale, key func(model.Sale) string) []Total {
	index := make(map[string]int)
	var totals []Total
	for _, s := range sales {
		k := key(s)
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, Total{Key: k, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(s.Amount)
	}

	slices.SortStableFunc(totals, func(a, b Total) int {
		return b.Amount.Cmp(a.Amount)
	})
	return totals
}

// ByCardType groups sales by card type.
func ByCardType(sales []model.Sale) []Total {
	return AggregateByKey(sales, func(s model.Sale) string { return s.CardType })
}

// ByVendor groups sales by vendor.
func ByVendor(sales []model.Sale) []Total {
	return AggregateByKey(sales, func(s model.Sale) string { return s.Vendor })
}

// ByModel groups sales by phone model.
func ByModel(sales []model.Sale) []Total {
	return AggregateByKey(sales, func(s model.Sale) string { return s.Model })
}

// TotalAmount sums all sale amounts.
func TotalAmount(sales []model.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Amount)
	}
	return sum
}

// Count returns the number of sales.
func Count(sales []model.Sale) int {
	return len(sales)
}

// Summary is the full reports view.
type Summary struct {
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Transactions int             `json:"transactions"`
	ByCardType   []Total         `json:"by_card_type"`
	ByVendor     []Total         `json:"by_vendor"`
	ByModel      []Total         `json:"by_model"`
	Inventory    Stats           `json:"inventory"`
}

// Summarize builds the reports view from full snapshots.
func Summarize(cards []model.Card, sales []model.Sale) Summary {
	return Summary{
		TotalAmount:  TotalAmount(sales),
		Transactions: Count(sales),
		ByCardType:   ByCardType(sales),
		ByVendor:     ByVendor(sales),
		ByModel:      ByModel(sales),
		Inventory:    Inventory(cards, sales),
	}
}
