package repository

import (
	"database/sql"

	"kathasales/ledger"
	"kathasales/models"
)

type PostgresReportRepo struct {
	DB *sql.DB
}

func NewPostgresReportRepo(db *sql.DB) *PostgresReportRepo {
	return &PostgresReportRepo{DB: db}
}

// ItemTransactions resolves the item, pulls its movements from the four
// transaction tables with four independent queries, and replays them into a
// running-balance history. Historical lines may carry only the item id or
// only the code, so both are matched. Any query failure aborts the whole
// report.
func (r *PostgresReportRepo) ItemTransactions(itemID int64, itemCode string) ([]ledger.Record, error) {
	item, err := r.findItem(itemID, itemCode)
	if err != nil {
		return nil, err
	}

	var entries []ledger.Entry
	appendSource := func(query, entryType string, inward bool) error {
		rows, err := r.DB.Query(query, item.ID, item.ItemCode)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var e ledger.Entry
			var qty int
			if err := rows.Scan(&e.Date, &e.RefNo, &e.PartyName, &qty); err != nil {
				return err
			}
			e.Type = entryType
			if inward {
				e.Inward = qty
			} else {
				e.Outward = qty
			}
			entries = append(entries, e)
		}
		return rows.Err()
	}

	// Source order fixes the tie-break on equal dates: purchases, cash
	// sales, credit sales, deliveries.
	if err := appendSource(`
		SELECT p.date, p.invoice_no, p.party_name, pi.quantity
		FROM purchase_items pi JOIN purchases p ON pi.purchase_id = p.id
		WHERE pi.item_id = $1 OR pi.item_code = $2
		ORDER BY p.date, pi.id
	`, ledger.TypePurchase, true); err != nil {
		return nil, err
	}
	if err := appendSource(`
		SELECT s.date, s.invoice_no, s.party_name, si.quantity
		FROM cash_sale_items si JOIN cash_sales s ON si.sale_id = s.id
		WHERE si.item_id = $1 OR si.item_code = $2
		ORDER BY s.date, si.id
	`, ledger.TypeCashSale, false); err != nil {
		return nil, err
	}
	if err := appendSource(`
		SELECT s.date, s.invoice_no, s.party_name, si.quantity
		FROM credit_sale_items si JOIN credit_sales s ON si.sale_id = s.id
		WHERE si.item_id = $1 OR si.item_code = $2
		ORDER BY s.date, si.id
	`, ledger.TypeCreditSale, false); err != nil {
		return nil, err
	}
	if err := appendSource(`
		SELECT c.date, c.chalan_no, c.party_name, ci.quantity
		FROM delivery_chalan_items ci JOIN delivery_chalans c ON ci.chalan_id = c.id
		WHERE ci.item_id = $1 OR ci.item_code = $2
		ORDER BY c.date, ci.id
	`, ledger.TypeDelivery, false); err != nil {
		return nil, err
	}

	return ledger.Reconstruct(item.OpeningStock, entries), nil
}

func (r *PostgresReportRepo) findItem(itemID int64, itemCode string) (*models.Item, error) {
	var it models.Item
	var row *sql.Row
	switch {
	case itemID > 0:
		row = r.DB.QueryRow(`SELECT id, item_code, opening_stock FROM items WHERE id=$1`, itemID)
	case itemCode != "":
		row = r.DB.QueryRow(`SELECT id, item_code, opening_stock FROM items WHERE item_code=$1`, itemCode)
	default:
		return nil, ErrNotFound
	}
	err := row.Scan(&it.ID, &it.ItemCode, &it.OpeningStock)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}
