package sales

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/erazemk/cardledger/internal/model"
	"github.com/erazemk/cardledger/internal/reconcile"
	"github.com/erazemk/cardledger/internal/report"
)

// InventoryQuery selects what the reconciled view shows. With Remaining
// set, the view lists the cards not yet used for Filter.Model.
type InventoryQuery struct {
	Filter    reconcile.Filter
	Remaining bool
}

// ParseInventoryQuery reads an InventoryQuery from query parameters. The
// remaining toggle is "remaining=1" and needs a model.
func ParseInventoryQuery(q url.Values, loc *time.Location) (InventoryQuery, error) {
	f, err := reconcile.ParseFilter(q, loc)
	if err != nil {
		return InventoryQuery{}, err
	}
	iq := InventoryQuery{Filter: f, Remaining: q.Get("remaining") == "1"}
	if iq.Remaining && f.Model == "" {
		return InventoryQuery{}, errors.New("remaining requires a model")
	}
	return iq, nil
}

// InventoryView is the reconciled view after filtering. Stats and Options
// always describe the whole inventory.
type InventoryView struct {
	Entries   []model.Entry        `json:"entries"`
	Stats     report.Stats         `json:"stats"`
	Options   reconcile.Options    `json:"options"`
	Remaining *reconcile.Remaining `json:"remaining,omitempty"`
}

// BuildInventory reconciles cards against sales and applies q.
func BuildInventory(cards []model.Card, sales []model.Sale, q InventoryQuery) *InventoryView {
	all := reconcile.Reconcile(cards, sales)
	v := &InventoryView{
		Stats:   report.Inventory(cards, sales),
		Options: reconcile.FilterOptions(all),
	}

	if q.Remaining {
		rem := reconcile.RemainingForModel(cards, sales, q.Filter.Model, q.Filter.CardType, q.Filter)
		v.Entries = rem.Entries
		rem.Entries = nil
		v.Remaining = &rem
	} else {
		v.Entries = reconcile.Apply(all, q.Filter)
	}
	if v.Entries == nil {
		v.Entries = []model.Entry{}
	}
	return v
}

// Inventory loads a snapshot and builds the reconciled view for q.
func (s *Service) Inventory(ctx context.Context, q InventoryQuery) (*InventoryView, error) {
	cards, sales, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BuildInventory(cards, sales, q), nil
}
