package report

import "github.com/erazemk/cardledger/internal/model"

// Stats are the headline numbers of the inventory view.
type Stats struct {
	TotalCards   int `json:"total_cards"`
	UsedCards    int `json:"used_cards"`
	Available    int `json:"available"`
	Transactions int `json:"transactions"`
}

// Inventory counts master list entries, distinct listed numbers with at
// least one sale, entries with no sale, and sales.
func Inventory(cards []model.Card, sales []model.Sale) Stats {
	sold := make(map[string]struct{}, len(sales))
	for _, s := range sales {
		sold[s.CardNumber] = struct{}{}
	}

	st := Stats{TotalCards: len(cards), Transactions: len(sales)}
	used := make(map[string]struct{})
	for _, c := range cards {
		if _, ok := sold[c.Number]; ok {
			used[c.Number] = struct{}{}
		} else {
			st.Available++
		}
	}
	st.UsedCards = len(used)
	return st
}
