package repository

import (
	"database/sql"
	"time"

	"kathasales/models"

	"github.com/lib/pq"
)

type PostgresSaleRepo struct {
	DB   *sql.DB
	Kind models.SaleKind
}

func NewPostgresSaleRepo(db *sql.DB, kind models.SaleKind) *PostgresSaleRepo {
	return &PostgresSaleRepo{DB: db, Kind: kind}
}

func (r *PostgresSaleRepo) headerTable() string {
	if r.Kind == models.SaleCredit {
		return "credit_sales"
	}
	return "cash_sales"
}

func (r *PostgresSaleRepo) lineTable() string {
	if r.Kind == models.SaleCredit {
		return "credit_sale_items"
	}
	return "cash_sale_items"
}

func fillSaleLine(line *models.SaleItem) {
	if line.Amount == 0 {
		line.Amount = float64(line.Quantity) * line.Rate
	}
}

func (r *PostgresSaleRepo) insertSaleLine(tx *sql.Tx, saleID int64, line *models.SaleItem) error {
	fillSaleLine(line)
	line.SaleID = saleID
	err := tx.QueryRow(`
		INSERT INTO `+r.lineTable()+`(sale_id, item_id, item_code, item_name, quantity, rate, amount, gst_amount)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		line.SaleID, line.ItemID, line.ItemCode, line.ItemName,
		line.Quantity, line.Rate, line.Amount, line.GSTAmount,
	).Scan(&line.ID)
	if err != nil {
		return err
	}
	// Sales take stock out.
	return adjustStock(tx, line.ItemID, line.ItemCode, -line.Quantity)
}

func (r *PostgresSaleRepo) recalcTotals(tx *sql.Tx, saleID int64) error {
	_, err := tx.Exec(`
		UPDATE `+r.headerTable()+` s SET
			subtotal    = COALESCE(t.subtotal, 0),
			total_gst   = COALESCE(t.total_gst, 0),
			grand_total = COALESCE(t.grand_total, 0)
		FROM (
			SELECT SUM(amount) AS subtotal,
			       SUM(gst_amount) AS total_gst,
			       SUM(amount + gst_amount) AS grand_total
			FROM `+r.lineTable()+` WHERE sale_id=$1
		) t
		WHERE s.id=$1
	`, saleID)
	return err
}

func (r *PostgresSaleRepo) CreateSale(sale *models.Sale) error {
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now().UTC()
	}
	if sale.Date.IsZero() {
		sale.Date = sale.CreatedAt
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO `+r.headerTable()+`(invoice_no, party_id, party_name, date, subtotal, total_gst, grand_total, created_at)
		VALUES($1,$2,$3,$4,0,0,0,$5)
		RETURNING id
	`, sale.InvoiceNo, sale.PartyID, sale.PartyName, sale.Date, sale.CreatedAt).Scan(&sale.ID)
	if err != nil {
		return err
	}

	for i := range sale.Items {
		if err := r.insertSaleLine(tx, sale.ID, &sale.Items[i]); err != nil {
			return err
		}
	}
	if err := r.recalcTotals(tx, sale.ID); err != nil {
		return err
	}
	if err := tx.QueryRow(`SELECT subtotal, total_gst, grand_total FROM `+r.headerTable()+` WHERE id=$1`, sale.ID).
		Scan(&sale.Subtotal, &sale.TotalGST, &sale.GrandTotal); err != nil {
		return err
	}

	return tx.Commit()
}

const saleColumns = `id, invoice_no, party_id, party_name, date, subtotal, total_gst, grand_total, created_at`

func (r *PostgresSaleRepo) GetSales() ([]*models.Sale, error) {
	rows, err := r.DB.Query(`SELECT ` + saleColumns + ` FROM ` + r.headerTable() + ` ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Sale
	for rows.Next() {
		var s models.Sale
		err := rows.Scan(&s.ID, &s.InvoiceNo, &s.PartyID, &s.PartyName, &s.Date,
			&s.Subtotal, &s.TotalGST, &s.GrandTotal, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(result) > 0 {
		byID := make(map[int64]*models.Sale, len(result))
		ids := make([]int64, len(result))
		for i, s := range result {
			byID[s.ID] = s
			ids[i] = s.ID
		}
		lineRows, err := r.DB.Query(`
			SELECT id, sale_id, item_id, item_code, item_name, quantity, rate, amount, gst_amount
			FROM `+r.lineTable()+`
			WHERE sale_id = ANY($1)
			ORDER BY id
		`, pq.Array(ids))
		if err != nil {
			return nil, err
		}
		defer lineRows.Close()
		for lineRows.Next() {
			var l models.SaleItem
			err := lineRows.Scan(&l.ID, &l.SaleID, &l.ItemID, &l.ItemCode, &l.ItemName,
				&l.Quantity, &l.Rate, &l.Amount, &l.GSTAmount)
			if err != nil {
				return nil, err
			}
			if s, ok := byID[l.SaleID]; ok {
				s.Items = append(s.Items, l)
			}
		}
		if err := lineRows.Err(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *PostgresSaleRepo) GetSaleByID(id int64) (*models.Sale, error) {
	var s models.Sale
	err := r.DB.QueryRow(`SELECT `+saleColumns+` FROM `+r.headerTable()+` WHERE id=$1`, id).
		Scan(&s.ID, &s.InvoiceNo, &s.PartyID, &s.PartyName, &s.Date,
			&s.Subtotal, &s.TotalGST, &s.GrandTotal, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	s.Items, err = r.GetSaleItems(id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresSaleRepo) UpdateSale(sale *models.Sale) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE `+r.headerTable()+` SET invoice_no=$1, party_id=$2, party_name=$3, date=$4
		WHERE id=$5
	`, sale.InvoiceNo, sale.PartyID, sale.PartyName, sale.Date, sale.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := r.reverseSaleLines(tx, sale.ID); err != nil {
		return err
	}
	for i := range sale.Items {
		if err := r.insertSaleLine(tx, sale.ID, &sale.Items[i]); err != nil {
			return err
		}
	}
	if err := r.recalcTotals(tx, sale.ID); err != nil {
		return err
	}

	return tx.Commit()
}

// reverseSaleLines puts the old lines' quantities back into stock and
// deletes them.
func (r *PostgresSaleRepo) reverseSaleLines(tx *sql.Tx, saleID int64) error {
	rows, err := tx.Query(`SELECT item_id, item_code, quantity FROM `+r.lineTable()+` WHERE sale_id=$1`, saleID)
	if err != nil {
		return err
	}
	type old struct {
		itemID   *int64
		itemCode string
		qty      int
	}
	var olds []old
	for rows.Next() {
		var o old
		if err := rows.Scan(&o.itemID, &o.itemCode, &o.qty); err != nil {
			rows.Close()
			return err
		}
		olds = append(olds, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, o := range olds {
		if err := adjustStock(tx, o.itemID, o.itemCode, o.qty); err != nil {
			return err
		}
	}
	_, err = tx.Exec(`DELETE FROM `+r.lineTable()+` WHERE sale_id=$1`, saleID)
	return err
}

func (r *PostgresSaleRepo) DeleteSale(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.reverseSaleLines(tx, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM `+r.headerTable()+` WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (r *PostgresSaleRepo) GetSaleItems(saleID int64) ([]models.SaleItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, sale_id, item_id, item_code, item_name, quantity, rate, amount, gst_amount
		FROM `+r.lineTable()+`
		WHERE sale_id=$1
		ORDER BY id
	`, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.SaleItem
	for rows.Next() {
		var l models.SaleItem
		err := rows.Scan(&l.ID, &l.SaleID, &l.ItemID, &l.ItemCode, &l.ItemName,
			&l.Quantity, &l.Rate, &l.Amount, &l.GSTAmount)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *PostgresSaleRepo) GetSaleItemByID(id int64) (*models.SaleItem, error) {
	var l models.SaleItem
	err := r.DB.QueryRow(`
		SELECT id, sale_id, item_id, item_code, item_name, quantity, rate, amount, gst_amount
		FROM `+r.lineTable()+`
		WHERE id=$1
	`, id).Scan(&l.ID, &l.SaleID, &l.ItemID, &l.ItemCode, &l.ItemName,
		&l.Quantity, &l.Rate, &l.Amount, &l.GSTAmount)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PostgresSaleRepo) CreateSaleItem(line *models.SaleItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.insertSaleLine(tx, line.SaleID, line); err != nil {
		return err
	}
	if err := r.recalcTotals(tx, line.SaleID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresSaleRepo) UpdateSaleItem(line *models.SaleItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var oldItemID *int64
	var oldCode string
	var oldQty int
	err = tx.QueryRow(`
		SELECT sale_id, item_id, item_code, quantity FROM `+r.lineTable()+` WHERE id=$1
	`, line.ID).Scan(&line.SaleID, &oldItemID, &oldCode, &oldQty)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := adjustStock(tx, oldItemID, oldCode, oldQty); err != nil {
		return err
	}

	fillSaleLine(line)
	_, err = tx.Exec(`
		UPDATE `+r.lineTable()+` SET
			item_id=$1, item_code=$2, item_name=$3, quantity=$4, rate=$5, amount=$6, gst_amount=$7
		WHERE id=$8
	`, line.ItemID, line.ItemCode, line.ItemName, line.Quantity, line.Rate,
		line.Amount, line.GSTAmount, line.ID)
	if err != nil {
		return err
	}

	if err := adjustStock(tx, line.ItemID, line.ItemCode, -line.Quantity); err != nil {
		return err
	}
	if err := r.recalcTotals(tx, line.SaleID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresSaleRepo) DeleteSaleItem(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var saleID int64
	var itemID *int64
	var code string
	var qty int
	err = tx.QueryRow(`
		SELECT sale_id, item_id, item_code, quantity FROM `+r.lineTable()+` WHERE id=$1
	`, id).Scan(&saleID, &itemID, &code, &qty)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := adjustStock(tx, itemID, code, qty); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM `+r.lineTable()+` WHERE id=$1`, id); err != nil {
		return err
	}
	if err := r.recalcTotals(tx, saleID); err != nil {
		return err
	}
	return tx.Commit()
}
