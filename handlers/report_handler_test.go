package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kathasales/ledger"
	"kathasales/repository"
)

type fakeReportRepo struct {
	records []ledger.Record
	err     error
	gotID   int64
	gotCode string
}

func (f *fakeReportRepo) ItemTransactions(itemID int64, itemCode string) ([]ledger.Record, error) {
	f.gotID = itemID
	f.gotCode = itemCode
	return f.records, f.err
}

func TestItemTransactionsByID(t *testing.T) {
	repo := &fakeReportRepo{records: []ledger.Record{
		{
			Entry:        ledger.Entry{Type: ledger.TypeOpening},
			OpeningStock: 0,
			ClosingStock: 10,
		},
		{
			Entry: ledger.Entry{
				Type:    ledger.TypeCashSale,
				Date:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
				RefNo:   "CS-1",
				Outward: 3,
			},
			OpeningStock: 10,
			ClosingStock: 7,
		},
	}}
	h := &ReportHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet, "/api/reports/item-transactions?item_id=5", nil)
	rec := httptest.NewRecorder()
	h.ItemTransactions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if repo.gotID != 5 || repo.gotCode != "" {
		t.Errorf("repo called with (%d, %q), want (5, \"\")", repo.gotID, repo.gotCode)
	}

	var body []ledger.Record
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body) != 2 {
		t.Fatalf("records = %d, want 2", len(body))
	}
	if body[0].Type != ledger.TypeOpening {
		t.Errorf("first record type = %q, want %q", body[0].Type, ledger.TypeOpening)
	}
}

func TestItemTransactionsByCode(t *testing.T) {
	repo := &fakeReportRepo{}
	h := &ReportHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet, "/api/reports/item-transactions?item_code=3101", nil)
	rec := httptest.NewRecorder()
	h.ItemTransactions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if repo.gotID != 0 || repo.gotCode != "3101" {
		t.Errorf("repo called with (%d, %q), want (0, \"3101\")", repo.gotID, repo.gotCode)
	}
}

func TestItemTransactionsMissingSelector(t *testing.T) {
	h := &ReportHandler{Repo: &fakeReportRepo{}}

	req := httptest.NewRequest(http.MethodGet, "/api/reports/item-transactions", nil)
	rec := httptest.NewRecorder()
	h.ItemTransactions(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestItemTransactionsUnknownItem(t *testing.T) {
	h := &ReportHandler{Repo: &fakeReportRepo{err: repository.ErrNotFound}}

	req := httptest.NewRequest(http.MethodGet, "/api/reports/item-transactions?item_code=9999", nil)
	rec := httptest.NewRecorder()
	h.ItemTransactions(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
