package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/cardledger/internal/model"
)

// ListCards returns the card master list in its stored order.
func ListCards(ctx context.Context, db *sqlx.DB) ([]model.Card, error) {
	var cards []model.Card
	if err := db.SelectContext(ctx, &cards, `SELECT number, type FROM cards ORDER BY id`); err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	return cards, nil
}

// CardTypes returns the distinct card types listed for a card number.
func CardTypes(ctx context.Context, db *sqlx.DB, number string) ([]string, error) {
	var types []string
	if err := db.SelectContext(ctx, &types,
		`SELECT DISTINCT type FROM cards WHERE number = ? ORDER BY type`, number,
	); err != nil {
		return nil, fmt.Errorf("listing card types: %w", err)
	}
	return types, nil
}

// ReplaceCards replaces the whole card master list with cards, keeping
// their order and any duplicates.
func ReplaceCards(ctx context.Context, db *sqlx.DB, cards []model.Card) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cards`); err != nil {
		return fmt.Errorf("clearing cards: %w", err)
	}
	if err := insertCards(ctx, tx, cards); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing card list: %w", err)
	}
	return nil
}

// SeedCards inserts cards only when the master list is empty. It reports
// whether anything was inserted.
func SeedCards(ctx context.Context, db *sqlx.DB, cards []model.Card) (bool, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM cards`); err != nil {
		return false, fmt.Errorf("counting cards: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if err := insertCards(ctx, tx, cards); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing card seed: %w", err)
	}
	return true, nil
}

func insertCards(ctx context.Context, tx *sqlx.Tx, cards []model.Card) error {
	stmt, err := tx.PreparexContext(ctx, `INSERT INTO cards (number, type) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing card insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cards {
		if _, err := stmt.ExecContext(ctx, c.Number, c.Type); err != nil {
			return fmt.Errorf("inserting card %s: %w", c.Number, err)
		}
	}
	return nil
}
