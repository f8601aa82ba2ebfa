package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/cardledger/internal/model"
)

const saleColumns = `id, date_time, card_number, card_type, machine, vendor, model, amount, type`

// CreateSale inserts a new sale record. The timestamp is stored in UTC so
// that date_time sorts as text in time order.
func CreateSale(ctx context.Context, db *sqlx.DB, s model.Sale) (*model.Sale, error) {
	s.DateTime = s.DateTime.UTC()
	_, err := db.NamedExecContext(ctx,
		`INSERT INTO sales (`+saleColumns+`)
		 VALUES (:id, :date_time, :card_number, :card_type, :machine, :vendor, :model, :amount, :type)`,
		s,
	)
	if err != nil {
		return nil, fmt.Errorf("creating sale: %w", err)
	}
	return GetSale(ctx, db, s.ID)
}

// GetSale returns a sale by ID, or nil if it does not exist.
func GetSale(ctx context.Context, db *sqlx.DB, id string) (*model.Sale, error) {
	s := &model.Sale{}
	err := db.GetContext(ctx, s, `SELECT `+saleColumns+` FROM sales WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting sale: %w", err)
	}
	return s, nil
}

// ListSales returns every sale, newest first.
func ListSales(ctx context.Context, db *sqlx.DB) ([]model.Sale, error) {
	var sales []model.Sale
	if err := db.SelectContext(ctx, &sales,
		`SELECT `+saleColumns+` FROM sales ORDER BY date_time DESC, id DESC`,
	); err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	return sales, nil
}

// UpdateSale overwrites a sale in place. It reports whether a row was updated.
func UpdateSale(ctx context.Context, db *sqlx.DB, s model.Sale) (bool, error) {
	s.DateTime = s.DateTime.UTC()
	result, err := db.NamedExecContext(ctx,
		`UPDATE sales SET date_time = :date_time, card_number = :card_number, card_type = :card_type,
		        machine = :machine, vendor = :vendor, model = :model, amount = :amount, type = :type
		 WHERE id = :id`,
		s,
	)
	if err != nil {
		return false, fmt.Errorf("updating sale: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking updated sale: %w", err)
	}
	return n > 0, nil
}

// DeleteSale removes a sale. It reports whether a row was deleted.
func DeleteSale(ctx context.Context, db *sqlx.DB, id string) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting sale: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking deleted sale: %w", err)
	}
	return n > 0, nil
}

// IsCardUsed reports whether any sale references the card number.
func IsCardUsed(ctx context.Context, db *sqlx.DB, number string) (bool, error) {
	var used bool
	err := db.GetContext(ctx, &used,
		`SELECT EXISTS (SELECT 1 FROM sales WHERE card_number = ?)`, number,
	)
	if err != nil {
		return false, fmt.Errorf("checking card usage: %w", err)
	}
	return used, nil
}
