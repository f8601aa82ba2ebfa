// Package export writes sales and reconciled inventory entries as CSV or
// XLSX downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/erazemk/cardledger/internal/model"
)

// Sheet names used in XLSX exports.
const (
	SalesSheet     = "Sales"
	InventorySheet = "Inventory"
)

var (
	salesHeader   = []string{"ID", "Date & Time", "Card Number", "Card Type", "Machine", "Vendor", "Model", "Amount", "Type"}
	entriesHeader = []string{"Card Number", "Card Type", "Status", "Date & Time", "Vendor", "Model", "Amount"}
)

// table is a header plus rows of cell values.
type table struct {
	header []string
	rows   [][]any
}

func salesTable(sales []model.Sale) table {
	t := table{header: salesHeader}
	for _, s := range sales {
		amount, _ := s.Amount.Float64()
		t.rows = append(t.rows, []any{
			s.ID,
			s.DateTime.In(time.Local).Format(model.DateTimeLayout),
			s.CardNumber,
			s.CardType,
			s.Machine,
			s.Vendor,
			s.Model,
			amount,
			string(s.Type),
		})
	}
	return t
}

func entriesTable(entries []model.Entry) table {
	t := table{header: entriesHeader}
	for _, e := range entries {
		row := []any{e.CardNumber, e.CardType, string(e.Status), model.Placeholder, model.Placeholder, model.Placeholder, model.Placeholder}
		if e.Status == model.StatusUsed {
			row[4], row[5] = e.Vendor, e.Model
			if e.DateTime != nil {
				row[3] = e.DateTime.In(time.Local).Format(model.DateTimeLayout)
			}
			if e.Amount != nil {
				row[6], _ = e.Amount.Float64()
			}
		}
		t.rows = append(t.rows, row)
	}
	return t
}

// SalesCSV writes sales as CSV.
func SalesCSV(w io.Writer, sales []model.Sale) error {
	return writeCSV(w, salesTable(sales))
}

// EntriesCSV writes reconciled entries as CSV.
func EntriesCSV(w io.Writer, entries []model.Entry) error {
	return writeCSV(w, entriesTable(entries))
}

// SalesXLSX writes sales as a single-sheet workbook.
func SalesXLSX(w io.Writer, sales []model.Sale) error {
	return writeXLSX(w, SalesSheet, salesTable(sales))
}

// EntriesXLSX writes reconciled entries as a single-sheet workbook.
func EntriesXLSX(w io.Writer, entries []model.Entry) error {
	return writeXLSX(w, InventorySheet, entriesTable(entries))
}

func writeCSV(w io.Writer, t table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	record := make([]string, len(t.header))
	for _, row := range t.rows {
		for i, v := range row {
			record[i] = fmt.Sprint(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, sheet string, t table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(t.header))
	for i, h := range t.header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i, row := range t.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
