package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS sales (
    id          TEXT PRIMARY KEY,
    date_time   DATETIME NOT NULL,
    card_number TEXT NOT NULL,
    card_type   TEXT NOT NULL,
    machine     TEXT NOT NULL,
    vendor      TEXT NOT NULL,
    model       TEXT NOT NULL,
    amount      TEXT NOT NULL,
    type        TEXT NOT NULL CHECK (type IN ('INSTANT', 'EMI'))
);

CREATE INDEX IF NOT EXISTS idx_sales_card_number ON sales(card_number);

CREATE TABLE IF NOT EXISTS cards (
    id     INTEGER PRIMARY KEY,
    number TEXT NOT NULL,
    type   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cards_number ON cards(number);
`

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{}

// EnsureSchema creates all tables and indexes if they don't already exist,
// then applies migrations.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}
	return nil
}
