package api

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/erazemk/cardledger/internal/db"
	"github.com/erazemk/cardledger/internal/masterdata"
	"github.com/erazemk/cardledger/internal/model"
	"github.com/erazemk/cardledger/internal/sales"
	"github.com/erazemk/cardledger/internal/store"
)

var testCards = []model.Card{
	{Number: "1001", Type: "SBI"},
	{Number: "1002", Type: "SBI"},
	{Number: "1003", Type: "HDFC"},
}

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := db.NewTestDB(t)
	if err := store.ReplaceCards(context.Background(), database, testCards); err != nil {
		t.Fatalf("seeding cards: %v", err)
	}

	master, err := masterdata.Open(filepath.Join(t.TempDir(), "master.json"))
	if err != nil {
		t.Fatalf("opening master data: %v", err)
	}

	router := NewRouter(sales.NewService(database, nil), master)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func request(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func saleBody(card, cardType, mdl, amount string, at time.Time) map[string]any {
	return map[string]any{
		"date_time":   at.Format(time.RFC3339),
		"card_number": card,
		"card_type":   cardType,
		"machine":     "PINELAB",
		"vendor":      "LIMPTON",
		"model":       mdl,
		"amount":      amount,
		"type":        "INSTANT",
	}
}

var march5 = time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)

func createSale(t *testing.T, server *httptest.Server, body map[string]any) model.Sale {
	t.Helper()
	resp := request(t, "POST", server.URL+"/api/sales", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create sale: expected 201, got %d", resp.StatusCode)
	}
	var s model.Sale
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		t.Fatalf("decoding sale: %v", err)
	}
	return s
}

func TestSalesCRUD(t *testing.T) {
	server := setupTestServer(t)

	created := createSale(t, server, saleBody("1001", "SBI", "VIVO", "100.50", march5))
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Amount.String() != "100.5" {
		t.Errorf("amount = %s, want 100.5", created.Amount)
	}

	// List.
	resp := request(t, "GET", server.URL+"/api/sales", nil)
	var list []model.Sale
	json.NewDecoder(resp.Body).Decode(&list)
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("expected the created sale, got %+v", list)
	}

	// Update.
	resp = request(t, "PUT", server.URL+"/api/sales/"+created.ID, saleBody("1001", "SBI", "REDMI", "75", march5))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", resp.StatusCode)
	}
	var updated model.Sale
	json.NewDecoder(resp.Body).Decode(&updated)
	if updated.Model != "REDMI" {
		t.Errorf("model = %q, want REDMI", updated.Model)
	}

	// Delete.
	resp = request(t, "DELETE", server.URL+"/api/sales/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	resp = request(t, "DELETE", server.URL+"/api/sales/"+created.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", resp.StatusCode)
	}
}

func TestCreateSaleErrors(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		name string
		body any
		want int
	}{
		{"unknown card", saleBody("9999", "SBI", "VIVO", "10", march5), http.StatusUnprocessableEntity},
		{"wrong type", saleBody("1003", "SBI", "VIVO", "10", march5), http.StatusUnprocessableEntity},
		{"negative amount", saleBody("1001", "SBI", "VIVO", "-1", march5), http.StatusBadRequest},
		{"missing model", saleBody("1001", "SBI", "", "10", march5), http.StatusBadRequest},
		{"not json", "nope", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := request(t, "POST", server.URL+"/api/sales", tt.body)
			if resp.StatusCode != tt.want {
				t.Errorf("expected %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}

	resp := request(t, "GET", server.URL+"/api/sales", nil)
	var list []model.Sale
	json.NewDecoder(resp.Body).Decode(&list)
	if len(list) != 0 {
		t.Errorf("rejected sales were stored: %+v", list)
	}
}

func TestCreateSaleDuplicateID(t *testing.T) {
	server := setupTestServer(t)

	body := saleBody("1001", "SBI", "VIVO", "10", march5)
	body["id"] = "fixed-id"
	createSale(t, server, body)

	resp := request(t, "POST", server.URL+"/api/sales", body)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409, got %d", resp.StatusCode)
	}
}

func TestUpdateUnknownSale(t *testing.T) {
	server := setupTestServer(t)

	resp := request(t, "PUT", server.URL+"/api/sales/missing", saleBody("1001", "SBI", "VIVO", "10", march5))
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCardTypes(t *testing.T) {
	server := setupTestServer(t)
	createSale(t, server, saleBody("1001", "SBI", "VIVO", "10", march5))

	resp := request(t, "GET", server.URL+"/api/cards/1001/types", nil)
	var info sales.CardInfo
	json.NewDecoder(resp.Body).Decode(&info)
	if !info.Known || !info.Used || len(info.Types) != 1 || info.Types[0] != "SBI" {
		t.Errorf("unexpected card info: %+v", info)
	}

	resp = request(t, "GET", server.URL+"/api/cards/4242/types", nil)
	json.NewDecoder(resp.Body).Decode(&info)
	if info.Known || len(info.Types) != 0 {
		t.Errorf("expected unknown card, got %+v", info)
	}
}

func TestReplaceCards(t *testing.T) {
	server := setupTestServer(t)

	cards := []model.Card{{Number: "2001", Type: "AXIS"}, {Number: "2001", Type: "AXIS"}}
	resp := request(t, "PUT", server.URL+"/api/cards", cards)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp = request(t, "GET", server.URL+"/api/cards", nil)
	var got []model.Card
	json.NewDecoder(resp.Body).Decode(&got)
	if len(got) != 2 || got[0] != cards[0] {
		t.Errorf("unexpected card list: %+v", got)
	}

	resp = request(t, "PUT", server.URL+"/api/cards", []model.Card{{Number: "", Type: "AXIS"}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank number: expected 400, got %d", resp.StatusCode)
	}
}

type inventoryBody struct {
	Entries   []model.Entry `json:"entries"`
	Remaining *struct {
		Remaining  int `json:"remaining"`
		Eligible   int `json:"eligible"`
		Percentage int `json:"percentage"`
	} `json:"remaining"`
	Stats struct {
		TotalCards int `json:"total_cards"`
		UsedCards  int `json:"used_cards"`
		Available  int `json:"available"`
	} `json:"stats"`
}

func TestInventory(t *testing.T) {
	server := setupTestServer(t)
	createSale(t, server, saleBody("1001", "SBI", "VIVO", "100", march5))
	createSale(t, server, saleBody("1001", "SBI", "REDMI", "50", march5.Add(time.Hour)))

	resp := request(t, "GET", server.URL+"/api/inventory", nil)
	var body inventoryBody
	json.NewDecoder(resp.Body).Decode(&body)
	if len(body.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(body.Entries))
	}
	if body.Stats.TotalCards != 3 || body.Stats.UsedCards != 1 || body.Stats.Available != 2 {
		t.Errorf("unexpected stats: %+v", body.Stats)
	}

	resp = request(t, "GET", server.URL+"/api/inventory?status=Available&type=SBI", nil)
	body = inventoryBody{}
	json.NewDecoder(resp.Body).Decode(&body)
	if len(body.Entries) != 1 || body.Entries[0].CardNumber != "1002" {
		t.Errorf("expected only 1002, got %+v", body.Entries)
	}

	resp = request(t, "GET", server.URL+"/api/inventory?remaining=1&model=VIVO&type=SBI", nil)
	body = inventoryBody{}
	json.NewDecoder(resp.Body).Decode(&body)
	if body.Remaining == nil {
		t.Fatal("expected remaining summary")
	}
	if body.Remaining.Remaining != 1 || body.Remaining.Eligible != 2 || body.Remaining.Percentage != 50 {
		t.Errorf("unexpected remaining: %+v", *body.Remaining)
	}
	if len(body.Entries) != 1 || body.Entries[0].CardNumber != "1002" {
		t.Errorf("expected only 1002 to remain, got %+v", body.Entries)
	}
}

func TestInventoryBadQuery(t *testing.T) {
	server := setupTestServer(t)

	for _, q := range []string{"?status=Sold", "?month=2024-13", "?remaining=1"} {
		resp := request(t, "GET", server.URL+"/api/inventory"+q, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, resp.StatusCode)
		}
	}
}

func TestReports(t *testing.T) {
	server := setupTestServer(t)
	createSale(t, server, saleBody("1001", "SBI", "VIVO", "100", march5))
	createSale(t, server, saleBody("1003", "HDFC", "VIVO", "25.25", march5))

	resp := request(t, "GET", server.URL+"/api/reports", nil)
	var summary struct {
		TotalAmount  string `json:"total_amount"`
		Transactions int    `json:"transactions"`
		ByCardType   []struct {
			Key string `json:"key"`
		} `json:"by_card_type"`
	}
	json.NewDecoder(resp.Body).Decode(&summary)
	if summary.TotalAmount != "125.25" || summary.Transactions != 2 {
		t.Errorf("unexpected totals: %+v", summary)
	}
	if len(summary.ByCardType) != 2 || summary.ByCardType[0].Key != "SBI" {
		t.Errorf("unexpected card type grouping: %+v", summary.ByCardType)
	}
}

func TestMasterDataETag(t *testing.T) {
	server := setupTestServer(t)

	resp := request(t, "GET", server.URL+"/api/master", nil)
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req, _ := http.NewRequest("GET", server.URL+"/api/master", nil)
	req.Header.Set("If-None-Match", etag)
	cached, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	cached.Body.Close()
	if cached.StatusCode != http.StatusNotModified {
		t.Errorf("expected 304, got %d", cached.StatusCode)
	}

	doc := masterdata.Document{CardTypes: []string{"SBI"}, Machines: []string{"PAYTM"}, Vendors: []string{"DISHA"}, Models: []string{"VIVO"}}
	resp = request(t, "PUT", server.URL+"/api/master", doc)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put: expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("ETag") == etag {
		t.Error("ETag did not change after update")
	}

	req, _ = http.NewRequest("PUT", server.URL+"/api/master", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("If-Match", etag)
	stale, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	stale.Body.Close()
	if stale.StatusCode != http.StatusPreconditionFailed {
		t.Errorf("stale If-Match: expected 412, got %d", stale.StatusCode)
	}
}

func TestExportSalesCSV(t *testing.T) {
	server := setupTestServer(t)
	createSale(t, server, saleBody("1001", "SBI", "VIVO", "100", march5))
	createSale(t, server, saleBody("1002", "SBI", "REDMI", "50", march5.AddDate(0, 1, 0)))

	resp := request(t, "GET", server.URL+"/api/export/sales.csv?month=2024-03", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != contentTypeCSV {
		t.Errorf("content type = %q", ct)
	}
	records, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected header and one row, got %d records", len(records))
	}
}

func TestExportInventoryXLSX(t *testing.T) {
	server := setupTestServer(t)

	resp := request(t, "GET", server.URL+"/api/export/inventory.xlsx", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != contentTypeXLSX {
		t.Errorf("content type = %q", ct)
	}
}
