// Package sales implements the sale entry workflow: input checks, card
// validation against the master list, and persistence.
package sales

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/erazemk/cardledger/internal/model"
	"github.com/erazemk/cardledger/internal/store"
)

// Service provides sale and card master list operations on a database.
type Service struct {
	DB     *sqlx.DB
	Logger *slog.Logger
}

// NewService creates a Service. A nil logger falls back to slog.Default.
func NewService(db *sqlx.DB, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{DB: db, Logger: logger}
}

// List returns every sale, newest first.
func (s *Service) List(ctx context.Context) ([]model.Sale, error) {
	return store.ListSales(ctx, s.DB)
}

// Cards returns the card master list.
func (s *Service) Cards(ctx context.Context) ([]model.Card, error) {
	return store.ListCards(ctx, s.DB)
}

// Snapshot loads both collections the reconciliation engine needs.
func (s *Service) Snapshot(ctx context.Context) ([]model.Card, []model.Sale, error) {
	cards, err := store.ListCards(ctx, s.DB)
	if err != nil {
		return nil, nil, err
	}
	sales, err := store.ListSales(ctx, s.DB)
	if err != nil {
		return nil, nil, err
	}
	return cards, sales, nil
}

// CardInfo describes a card number as seen by the entry form.
type CardInfo struct {
	Number string   `json:"number"`
	Types  []string `json:"types"`
	Known  bool     `json:"known"`
	Used   bool     `json:"used"`
}

// CardInfo looks up the distinct types listed for a card number and
// whether any sale already used it.
func (s *Service) CardInfo(ctx context.Context, number string) (*CardInfo, error) {
	number = strings.TrimSpace(number)
	types, err := store.CardTypes(ctx, s.DB, number)
	if err != nil {
		return nil, err
	}
	used, err := store.IsCardUsed(ctx, s.DB, number)
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []string{}
	}
	return &CardInfo{Number: number, Types: types, Known: len(types) > 0, Used: used}, nil
}

// Create validates and stores a new sale. A missing ID is generated.
func (s *Service) Create(ctx context.Context, in Input) (*model.Sale, error) {
	in.normalize()
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if err := s.checkInput(ctx, &in); err != nil {
		return nil, err
	}

	existing, err := store.GetSale(ctx, s.DB, in.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.Logger.Warn("rejected sale with existing id", "sale_id", in.ID)
		return nil, fmt.Errorf("creating sale %s: %w", in.ID, ErrConflict)
	}

	sale, err := store.CreateSale(ctx, s.DB, in.sale())
	if err != nil {
		s.Logger.Error("failed to save sale", "sale_id", in.ID, "error", err)
		return nil, err
	}

	s.Logger.Info("sale created", "sale_id", sale.ID, "card", sale.CardNumber, "model", sale.Model, "amount", sale.Amount.String())
	return sale, nil
}

// Update validates and overwrites the sale with the given ID.
func (s *Service) Update(ctx context.Context, id string, in Input) (*model.Sale, error) {
	in.normalize()
	in.ID = strings.TrimSpace(id)
	if err := s.checkInput(ctx, &in); err != nil {
		return nil, err
	}

	ok, err := store.UpdateSale(ctx, s.DB, in.sale())
	if err != nil {
		s.Logger.Error("failed to update sale", "sale_id", in.ID, "error", err)
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("updating sale %s: %w", in.ID, ErrNotFound)
	}

	s.Logger.Info("sale updated", "sale_id", in.ID)
	return store.GetSale(ctx, s.DB, in.ID)
}

// Delete removes the sale with the given ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := store.DeleteSale(ctx, s.DB, id)
	if err != nil {
		s.Logger.Error("failed to delete sale", "sale_id", id, "error", err)
		return err
	}
	if !ok {
		return fmt.Errorf("deleting sale %s: %w", id, ErrNotFound)
	}
	s.Logger.Info("sale deleted", "sale_id", id)
	return nil
}

// ReplaceCards replaces the card master list wholesale.
func (s *Service) ReplaceCards(ctx context.Context, cards []model.Card) error {
	clean := make([]model.Card, 0, len(cards))
	for i, c := range cards {
		c.Number = strings.TrimSpace(c.Number)
		c.Type = strings.TrimSpace(c.Type)
		if c.Number == "" {
			return &MalformedInputError{Field: fmt.Sprintf("cards[%d].number", i), Reason: "required"}
		}
		if c.Type == "" {
			return &MalformedInputError{Field: fmt.Sprintf("cards[%d].type", i), Reason: "required"}
		}
		clean = append(clean, c)
	}

	if err := store.ReplaceCards(ctx, s.DB, clean); err != nil {
		s.Logger.Error("failed to replace card list", "error", err)
		return err
	}
	s.Logger.Info("card list replaced", "cards", len(clean))
	return nil
}

// checkInput runs the shape checks and then the master list check.
func (s *Service) checkInput(ctx context.Context, in *Input) error {
	if err := in.check(); err != nil {
		s.Logger.Warn("rejected malformed sale", "error", err)
		return err
	}

	types, err := store.CardTypes(ctx, s.DB, in.CardNumber)
	if err != nil {
		return err
	}
	if !slices.Contains(types, in.CardType) {
		verr := &ValidationError{CardNumber: in.CardNumber, CardType: in.CardType, Known: types}
		s.Logger.Warn("rejected sale for unlisted card", "card", in.CardNumber, "type", in.CardType)
		return verr
	}
	return nil
}
