package repository

import "kathasales/ledger"

// ReportRepository builds the item transaction history report. The item may
// be addressed by internal id (pass code "") or by item code (pass id 0).
type ReportRepository interface {
	ItemTransactions(itemID int64, itemCode string) ([]ledger.Record, error)
}
