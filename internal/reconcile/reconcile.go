// Package reconcile joins the card master list against recorded sales and
// answers the inventory questions asked of that join: which cards are used,
// which are available, and which remain unused for a given phone model.
//
// Every function is pure. Callers pass full snapshots of both collections
// and get a fresh result on each call.
package reconcile

import (
	"cmp"
	"slices"
	"strings"

	"github.com/erazemk/cardledger/internal/model"
)

// Reconcile classifies every card of the master list as Used or Available.
//
// A card with no sale against its number yields one Available entry. A card
// with N sales yields N Used entries, one per sale, carrying the sale's own
// card type. Cards match sales by number only. Duplicate master list entries
// are reconciled independently.
//
// Entries are ordered by card number, then Used before Available, then by
// ascending sale time. Equal keys keep their input order.
func Reconcile(cards []model.Card, sales []model.Sale) []model.Entry {
	byNumber := make(map[string][]model.Sale, len(sales))
	for _, s := range sales {
		byNumber[s.CardNumber] = append(byNumber[s.CardNumber], s)
	}

	entries := make([]model.Entry, 0, len(cards))
	for _, c := range cards {
		matched := byNumber[c.Number]
		if len(matched) == 0 {
			entries = append(entries, model.Entry{
				CardNumber: c.Number,
				CardType:   c.Type,
				Status:     model.StatusAvailable,
			})
			continue
		}
		for _, s := range matched {
			entries = append(entries, usedEntry(c, s))
		}
	}

	slices.SortStableFunc(entries, compareEntries)
	return entries
}

func usedEntry(c model.Card, s model.Sale) model.Entry {
	at := s.DateTime
	amount := s.Amount
	cardType := s.CardType
	if cardType == "" {
		cardType = c.Type
	}
	return model.Entry{
		CardNumber: c.Number,
		CardType:   cardType,
		Status:     model.StatusUsed,
		SaleID:     s.ID,
		DateTime:   &at,
		Vendor:     s.Vendor,
		Model:      s.Model,
		Amount:     &amount,
	}
}

func compareEntries(a, b model.Entry) int {
	if c := strings.Compare(a.CardNumber, b.CardNumber); c != 0 {
		return c
	}
	switch {
	case a.DateTime == nil && b.DateTime == nil:
		return 0
	case a.DateTime == nil:
		return 1
	case b.DateTime == nil:
		return -1
	}
	return a.DateTime.Compare(*b.DateTime)
}

// Options holds the distinct values offered by the column filters.
type Options struct {
	CardNumbers []string `json:"card_numbers"`
	CardTypes   []string `json:"card_types"`
	Vendors     []string `json:"vendors"`
	Models      []string `json:"models"`
}

// FilterOptions collects the sorted distinct card numbers, card types,
// vendors and models present in entries. Available rows contribute no
// vendor or model.
func FilterOptions(entries []model.Entry) Options {
	var o Options
	for _, e := range entries {
		o.CardNumbers = append(o.CardNumbers, e.CardNumber)
		o.CardTypes = append(o.CardTypes, e.CardType)
		if e.Status == model.StatusUsed {
			o.Vendors = append(o.Vendors, e.Vendor)
			o.Models = append(o.Models, e.Model)
		}
	}
	return Options{
		CardNumbers: sortedDistinct(o.CardNumbers),
		CardTypes:   sortedDistinct(o.CardTypes),
		Vendors:     sortedDistinct(o.Vendors),
		Models:      sortedDistinct(o.Models),
	}
}

func sortedDistinct(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, cmp.Compare[string])
	return slices.Compact(out)
}
