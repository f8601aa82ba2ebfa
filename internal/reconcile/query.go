package reconcile

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/erazemk/cardledger/internal/model"
)

// ParseFilter reads an entry filter from query parameters: card, type,
// status, vendor, model, from, to, month and q. Dates are read in loc.
func ParseFilter(q url.Values, loc *time.Location) (Filter, error) {
	sf, err := ParseSaleFilter(q, loc)
	if err != nil {
		return Filter{}, err
	}
	f := Filter{
		CardNumber: strings.TrimSpace(q.Get("card")),
		CardType:   strings.TrimSpace(q.Get("type")),
		Status:     model.CardStatus(strings.TrimSpace(q.Get("status"))),
		Vendor:     strings.TrimSpace(q.Get("vendor")),
		Model:      strings.TrimSpace(q.Get("model")),
		From:       sf.From,
		To:         sf.To,
		Month:      sf.Month,
		Search:     sf.Search,
	}
	if f.Status != "" && !f.Status.Valid() {
		return Filter{}, fmt.Errorf("invalid status %q", f.Status)
	}
	return f, nil
}

// ParseSaleFilter reads a sale filter from the from, to, month and q query
// parameters.
func ParseSaleFilter(q url.Values, loc *time.Location) (SaleFilter, error) {
	from, err := model.ParseDate(strings.TrimSpace(q.Get("from")), loc)
	if err != nil {
		return SaleFilter{}, err
	}
	to, err := model.ParseDate(strings.TrimSpace(q.Get("to")), loc)
	if err != nil {
		return SaleFilter{}, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return SaleFilter{}, errors.New("date range ends before it starts")
	}
	month, err := model.ParseYearMonth(strings.TrimSpace(q.Get("month")), loc)
	if err != nil {
		return SaleFilter{}, err
	}
	return SaleFilter{From: from, To: to, Month: month, Search: strings.TrimSpace(q.Get("q"))}, nil
}
