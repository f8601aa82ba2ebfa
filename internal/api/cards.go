package api

import (
	"net/http"

	"github.com/erazemk/cardledger/internal/model"
	"github.com/erazemk/cardledger/internal/sales"
)

// CardsHandler handles card master list endpoints.
type CardsHandler struct {
	Service *sales.Service
}

// List handles GET /api/cards.
func (h *CardsHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Service.Cards(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	if cards == nil {
		cards = []model.Card{}
	}
	jsonResponse(w, http.StatusOK, cards)
}

// Replace handles PUT /api/cards.
func (h *CardsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var cards []model.Card
	if err := decodeJSON(r, &cards); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.ReplaceCards(r.Context(), cards); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int{"cards": len(cards)})
}

// Types handles GET /api/cards/{number}/types.
func (h *CardsHandler) Types(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.CardInfo(r.Context(), r.PathValue("number"))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, info)
}
