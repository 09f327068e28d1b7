package ledger

import (
	"reflect"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, time.April, d, 0, 0, 0, 0, time.UTC)
}

func TestReconstructScenario(t *testing.T) {
	// opening 10, purchase 5 on day 1, cash sale 3 on day 2, delivery 2 on day 3
	entries := []Entry{
		{Date: day(1), Type: TypePurchase, RefNo: "P-1", Inward: 5},
		{Date: day(2), Type: TypeCashSale, RefNo: "CS-1", Outward: 3},
		{Date: day(3), Type: TypeDelivery, RefNo: "DC-1", Outward: 2},
	}

	records := Reconstruct(10, entries)
	if len(records) != 4 {
		t.Fatalf("want 4 records, got %d", len(records))
	}

	expect := []struct {
		typ              string
		opening, closing int
	}{
		{TypeOpening, 10, 10},
		{TypePurchase, 10, 15},
		{TypeCashSale, 15, 12},
		{TypeDelivery, 12, 10},
	}
	for i, e := range expect {
		r := records[i]
		if r.Type != e.typ || r.OpeningStock != e.opening || r.ClosingStock != e.closing {
			t.Fatalf("record %d: got %s %d->%d, want %s %d->%d",
				i, r.Type, r.OpeningStock, r.ClosingStock, e.typ, e.opening, e.closing)
		}
	}
}

func TestReconstructRunningBalanceInvariant(t *testing.T) {
	entries := []Entry{
		{Date: day(5), Type: TypeCreditSale, Outward: 7},
		{Date: day(1), Type: TypePurchase, Inward: 20},
		{Date: day(3), Type: TypeCashSale, Outward: 4},
		{Date: day(3), Type: TypeDelivery, Outward: 1},
		{Date: day(9), Type: TypePurchase, Inward: 2},
	}

	opening := 6
	records := Reconstruct(opening, entries)

	totalIn, totalOut := 0, 0
	for _, e := range entries {
		totalIn += e.Inward
		totalOut += e.Outward
	}
	last := records[len(records)-1]
	if last.ClosingStock != opening+totalIn-totalOut {
		t.Fatalf("final closing %d, want %d", last.ClosingStock, opening+totalIn-totalOut)
	}

	// Each record opens where the previous closed.
	for i := 1; i < len(records); i++ {
		if records[i].OpeningStock != records[i-1].ClosingStock {
			t.Fatalf("record %d opens at %d, previous closed at %d",
				i, records[i].OpeningStock, records[i-1].ClosingStock)
		}
	}
}

func TestReconstructDateTieOrderIsStable(t *testing.T) {
	// All on the same day, appended in source order: purchases, cash sales,
	// credit sales, deliveries. That order must survive the sort.
	entries := []Entry{
		{Date: day(2), Type: TypePurchase, RefNo: "P-9", Inward: 1},
		{Date: day(2), Type: TypeCashSale, RefNo: "CS-9", Outward: 1},
		{Date: day(2), Type: TypeCreditSale, RefNo: "CR-9", Outward: 1},
		{Date: day(2), Type: TypeDelivery, RefNo: "DC-9", Outward: 1},
	}

	first := Reconstruct(5, entries)
	for i := 0; i < 50; i++ {
		again := Reconstruct(5, entries)
		if !reflect.DeepEqual(first, again) {
			t.Fatal("output differs across runs for identical input")
		}
	}

	wantOrder := []string{TypeOpening, TypePurchase, TypeCashSale, TypeCreditSale, TypeDelivery}
	for i, r := range first {
		if r.Type != wantOrder[i] {
			t.Fatalf("position %d: got %s, want %s", i, r.Type, wantOrder[i])
		}
	}
}

func TestReconstructNoMovements(t *testing.T) {
	records := Reconstruct(12, nil)
	if len(records) != 1 {
		t.Fatalf("want only the opening record, got %d", len(records))
	}
	if records[0].Type != TypeOpening || records[0].ClosingStock != 12 {
		t.Fatalf("opening record: %+v", records[0])
	}
}
