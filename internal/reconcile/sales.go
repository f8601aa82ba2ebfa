package reconcile

import (
	"time"

	"github.com/erazemk/cardledger/internal/model"
)

// SaleFilter selects sale records for the records view.
type SaleFilter struct {
	From   time.Time
	To     time.Time
	Month  model.YearMonth
	Search string
}

// Match reports whether s satisfies every set predicate.
func (f SaleFilter) Match(s model.Sale) bool {
	if !inDateRange(s.DateTime, f.From, f.To) {
		return false
	}
	if !f.Month.IsZero() && !f.Month.Contains(s.DateTime) {
		return false
	}
	if f.Search != "" && !containsFold(s.DisplayFields(), f.Search) {
		return false
	}
	return true
}

// FilterSales returns the sales matching f, in input order.
func FilterSales(sales []model.Sale, f SaleFilter) []model.Sale {
	if f == (SaleFilter{}) {
		return sales
	}
	out := make([]model.Sale, 0, len(sales))
	for _, s := range sales {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}
