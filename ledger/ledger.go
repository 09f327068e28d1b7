package ledger

import (
	"sort"
	"time"
)

// Transaction types as they appear on the item history report.
const (
	TypeOpening    = "OPENING"
	TypePurchase   = "PURCHASE"
	TypeCashSale   = "CASH_SALE"
	TypeCreditSale = "CREDIT_SALE"
	TypeDelivery   = "DELIVERY"
)

// Entry is one stock movement pulled from any of the transaction tables.
// Purchases are inward; sales and delivery chalans are outward.
type Entry struct {
	Date      time.Time `json:"date"`
	Type      string    `json:"transaction_type"`
	RefNo     string    `json:"reference_no"`
	PartyName string    `json:"party_name"`
	Inward    int       `json:"inward"`
	Outward   int       `json:"outward"`
}

// Record is an Entry placed on the timeline with its running balance.
type Record struct {
	Entry
	OpeningStock int `json:"opening_stock"`
	ClosingStock int `json:"closing_stock"`
}

// Reconstruct merges stock movements into one chronologically ordered
// history with a running balance, seeded by a synthetic OPENING record.
//
// Callers append entries source by source (purchases, cash sales, credit
// sales, deliveries); the sort is stable, so rows sharing a date keep that
// order and the report stays deterministic.
func Reconstruct(openingStock int, entries []Entry) []Record {
	merged := make([]Entry, 0, len(entries)+1)
	merged = append(merged, Entry{
		Date: time.Time{},
		Type: TypeOpening,
	})
	merged = append(merged, entries...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	records := make([]Record, 0, len(merged))
	stock := openingStock
	for _, e := range merged {
		if e.Type == TypeOpening {
			records = append(records, Record{
				Entry:        e,
				OpeningStock: openingStock,
				ClosingStock: openingStock,
			})
			continue
		}
		rec := Record{Entry: e, OpeningStock: stock}
		stock = stock + e.Inward - e.Outward
		rec.ClosingStock = stock
		records = append(records, rec)
	}
	return records
}
