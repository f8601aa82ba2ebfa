package reconcile

import (
	"math"

	"github.com/erazemk/cardledger/internal/model"
)

// Remaining describes how many cards are still unused for a phone model.
type Remaining struct {
	Model      string        `json:"model"`
	CardType   string        `json:"card_type,omitempty"`
	Remaining  int           `json:"remaining"`
	Eligible   int           `json:"eligible"`
	Percentage int           `json:"percentage"`
	Entries    []model.Entry `json:"entries,omitempty"`
}

// RemainingForModel reports the cards not yet used for targetModel.
//
// A card number is excluded once any sale for targetModel used it; when
// cardType is set, only sales recorded with that type count. Cards that are
// Available and cards used only for other models both remain. The type is
// matched against the type shown on each reconciled row, which for Used rows
// is the sale's recorded type rather than the master list type. Eligible is
// the number of distinct card numbers among rows of the requested type, and
// Remaining is Eligible less the excluded numbers. The percentage is rounded and is 0
// when nothing is eligible.
//
// The remaining entries are narrowed further by rest, ignoring its model and
// card type, since the model is the pivot and the type is already applied.
func RemainingForModel(cards []model.Card, sales []model.Sale, targetModel, cardType string, rest Filter) Remaining {
	entries := Reconcile(cards, sales)

	excluded := make(map[string]struct{})
	eligibleNumbers := make(map[string]struct{})
	var eligible []model.Entry
	for _, e := range entries {
		if cardType != "" && e.CardType != cardType {
			continue
		}
		eligible = append(eligible, e)
		eligibleNumbers[e.CardNumber] = struct{}{}
		if e.Status == model.StatusUsed && e.Model == targetModel {
			excluded[e.CardNumber] = struct{}{}
		}
	}

	kept := make([]model.Entry, 0, len(eligible))
	for _, e := range eligible {
		if _, ok := excluded[e.CardNumber]; !ok {
			kept = append(kept, e)
		}
	}

	rest.Model = ""
	rest.CardType = ""

	r := Remaining{
		Model:    targetModel,
		CardType: cardType,
		Eligible: len(eligibleNumbers),
		Entries:  Apply(kept, rest),
	}
	if r.Eligible > 0 {
		r.Remaining = r.Eligible - len(excluded)
		r.Percentage = int(math.Round(float64(r.Remaining) / float64(r.Eligible) * 100))
	}
	return r
}
