package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erazemk/cardledger/internal/db"
	"github.com/erazemk/cardledger/internal/model"
)

func testSale(id, card string, at time.Time) model.Sale {
	return model.Sale{
		ID:         id,
		DateTime:   at,
		CardNumber: card,
		CardType:   "SBI",
		Machine:    "PINELAB",
		Vendor:     "LIMPTON",
		Model:      "VIVO",
		Amount:     decimal.RequireFromString("1499.50"),
		Type:       model.SaleTypeInstant,
	}
}

func TestCreateAndGetSale(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	at := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	sale, err := CreateSale(ctx, database, testSale("s1", "7340", at))
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	if sale.ID != "s1" {
		t.Errorf("expected id 's1', got %q", sale.ID)
	}
	if !sale.DateTime.Equal(at) {
		t.Errorf("expected date_time %v, got %v", at, sale.DateTime)
	}
	if !sale.Amount.Equal(decimal.RequireFromString("1499.5")) {
		t.Errorf("expected amount 1499.50, got %s", sale.Amount)
	}
	if sale.Type != model.SaleTypeInstant {
		t.Errorf("expected type INSTANT, got %q", sale.Type)
	}

	missing, err := GetSale(ctx, database, "nope")
	if err != nil {
		t.Fatalf("GetSale: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing sale, got %+v", missing)
	}
}

func TestCreateSaleDuplicateIDFails(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	at := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	if _, err := CreateSale(ctx, database, testSale("s1", "7340", at)); err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	if _, err := CreateSale(ctx, database, testSale("s1", "7357", at)); err == nil {
		t.Error("expected error for duplicate sale id")
	}
}

func TestListSalesNewestFirst(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	CreateSale(ctx, database, testSale("a", "7340", base))
	CreateSale(ctx, database, testSale("b", "7357", base.Add(2*time.Hour)))
	CreateSale(ctx, database, testSale("c", "7373", base.Add(time.Hour)))

	sales, err := ListSales(ctx, database)
	if err != nil {
		t.Fatalf("ListSales: %v", err)
	}
	if len(sales) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(sales))
	}
	want := []string{"b", "c", "a"}
	for i, id := range want {
		if sales[i].ID != id {
			t.Errorf("sales[%d] = %q, want %q", i, sales[i].ID, id)
		}
	}
}

func TestUpdateSale(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	at := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	sale, _ := CreateSale(ctx, database, testSale("s1", "7340", at))

	sale.Model = "REDMI"
	sale.Amount = decimal.NewFromInt(50)
	ok, err := UpdateSale(ctx, database, *sale)
	if err != nil {
		t.Fatalf("UpdateSale: %v", err)
	}
	if !ok {
		t.Fatal("expected update to report a changed row")
	}

	got, _ := GetSale(ctx, database, "s1")
	if got.Model != "REDMI" || !got.Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected updated model and amount, got %+v", got)
	}

	ok, err = UpdateSale(ctx, database, testSale("missing", "7340", at))
	if err != nil {
		t.Fatalf("UpdateSale: %v", err)
	}
	if ok {
		t.Error("expected update of missing sale to report no change")
	}
}

func TestDeleteSale(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateSale(ctx, database, testSale("s1", "7340", time.Now().UTC()))

	ok, err := DeleteSale(ctx, database, "s1")
	if err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}
	if !ok {
		t.Error("expected delete to report a removed row")
	}

	ok, _ = DeleteSale(ctx, database, "s1")
	if ok {
		t.Error("expected second delete to report nothing removed")
	}

	sales, _ := ListSales(ctx, database)
	if len(sales) != 0 {
		t.Errorf("expected 0 sales, got %d", len(sales))
	}
}

func TestIsCardUsed(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateSale(ctx, database, testSale("s1", "7340", time.Now().UTC()))

	used, err := IsCardUsed(ctx, database, "7340")
	if err != nil {
		t.Fatalf("IsCardUsed: %v", err)
	}
	if !used {
		t.Error("expected 7340 to be used")
	}

	used, _ = IsCardUsed(ctx, database, "7357")
	if used {
		t.Error("expected 7357 to be unused")
	}
}

func TestListSalesOrdersMixedOffsets(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// 2024-03-31 19:00 UTC, written with a +05:30 offset.
	ist := time.FixedZone("IST", 5*60*60+30*60)
	early := time.Date(2024, 4, 1, 0, 30, 0, 0, ist)
	late := time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC)

	if _, err := CreateSale(ctx, database, testSale("early", "1001", early)); err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	if _, err := CreateSale(ctx, database, testSale("late", "1002", late)); err != nil {
		t.Fatalf("CreateSale: %v", err)
	}

	sales, err := ListSales(ctx, database)
	if err != nil {
		t.Fatalf("ListSales: %v", err)
	}
	if len(sales) != 2 || sales[0].ID != "late" || sales[1].ID != "early" {
		t.Fatalf("expected late before early, got %+v", sales)
	}
	if !sales[1].DateTime.Equal(early) {
		t.Errorf("stored instant changed: got %v, want %v", sales[1].DateTime, early)
	}
	if _, offset := sales[1].DateTime.Zone(); offset != 0 {
		t.Errorf("expected timestamps stored in UTC, got offset %d", offset)
	}
}
