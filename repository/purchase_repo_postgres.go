package repository

import (
	"database/sql"
	"time"

	"kathasales/models"

	"github.com/lib/pq"
)

type PostgresPurchaseRepo struct {
	DB *sql.DB
}

func NewPostgresPurchaseRepo(db *sql.DB) *PostgresPurchaseRepo {
	return &PostgresPurchaseRepo{DB: db}
}

// adjustStock moves an item's current stock by delta. Historical lines may
// carry only an item code, so the code is the fallback match.
func adjustStock(tx *sql.Tx, itemID *int64, itemCode string, delta int) error {
	if delta == 0 {
		return nil
	}
	var err error
	if itemID != nil {
		_, err = tx.Exec(`UPDATE items SET current_stock = current_stock + $1 WHERE id=$2`, delta, *itemID)
	} else if itemCode != "" {
		_, err = tx.Exec(`UPDATE items SET current_stock = current_stock + $1 WHERE item_code=$2`, delta, itemCode)
	}
	return err
}

// fillPurchaseLine derives amount and the landed per-item cost.
func fillPurchaseLine(line *models.PurchaseItem) {
	if line.Amount == 0 {
		line.Amount = float64(line.Quantity) * line.Rate
	}
	if line.Quantity > 0 {
		line.PerItemCost = (line.Amount + line.GSTAmount + line.TransportCharge + line.OtherCharge) /
			float64(line.Quantity)
	}
}

func insertPurchaseLine(tx *sql.Tx, purchaseID int64, line *models.PurchaseItem) error {
	fillPurchaseLine(line)
	line.PurchaseID = purchaseID
	err := tx.QueryRow(`
		INSERT INTO purchase_items(
			purchase_id, item_id, item_code, item_name, quantity, rate,
			amount, gst_amount, transport_charge, other_charge, per_item_cost
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`,
		line.PurchaseID, line.ItemID, line.ItemCode, line.ItemName,
		line.Quantity, line.Rate, line.Amount, line.GSTAmount,
		line.TransportCharge, line.OtherCharge, line.PerItemCost,
	).Scan(&line.ID)
	if err != nil {
		return err
	}
	// Purchases bring stock in.
	return adjustStock(tx, line.ItemID, line.ItemCode, line.Quantity)
}

// recalcPurchaseTotals re-aggregates the header from its lines.
func recalcPurchaseTotals(tx *sql.Tx, purchaseID int64) error {
	_, err := tx.Exec(`
		UPDATE purchases p SET
			subtotal    = COALESCE(t.subtotal, 0),
			total_gst   = COALESCE(t.total_gst, 0),
			grand_total = COALESCE(t.grand_total, 0)
		FROM (
			SELECT SUM(amount) AS subtotal,
			       SUM(gst_amount) AS total_gst,
			       SUM(amount + gst_amount + transport_charge + other_charge) AS grand_total
			FROM purchase_items WHERE purchase_id=$1
		) t
		WHERE p.id=$1
	`, purchaseID)
	return err
}

func (r *PostgresPurchaseRepo) CreatePurchase(purchase *models.Purchase) error {
	if purchase.CreatedAt.IsZero() {
		purchase.CreatedAt = time.Now().UTC()
	}
	if purchase.Date.IsZero() {
		purchase.Date = purchase.CreatedAt
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO purchases(invoice_no, party_id, party_name, date, subtotal, total_gst, grand_total, created_at)
		VALUES($1,$2,$3,$4,0,0,0,$5)
		RETURNING id
	`, purchase.InvoiceNo, purchase.PartyID, purchase.PartyName, purchase.Date, purchase.CreatedAt).
		Scan(&purchase.ID)
	if err != nil {
		return err
	}

	for i := range purchase.Items {
		if err := insertPurchaseLine(tx, purchase.ID, &purchase.Items[i]); err != nil {
			return err
		}
	}
	if err := recalcPurchaseTotals(tx, purchase.ID); err != nil {
		return err
	}
	if err := tx.QueryRow(`SELECT subtotal, total_gst, grand_total FROM purchases WHERE id=$1`, purchase.ID).
		Scan(&purchase.Subtotal, &purchase.TotalGST, &purchase.GrandTotal); err != nil {
		return err
	}

	return tx.Commit()
}

const purchaseColumns = `id, invoice_no, party_id, party_name, date, subtotal, total_gst, grand_total, created_at`

func (r *PostgresPurchaseRepo) GetPurchases() ([]*models.Purchase, error) {
	rows, err := r.DB.Query(`SELECT ` + purchaseColumns + ` FROM purchases ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Purchase
	for rows.Next() {
		var p models.Purchase
		err := rows.Scan(&p.ID, &p.InvoiceNo, &p.PartyID, &p.PartyName, &p.Date,
			&p.Subtotal, &p.TotalGST, &p.GrandTotal, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Load all lines in one query to avoid N+1.
	if len(result) > 0 {
		byID := make(map[int64]*models.Purchase, len(result))
		ids := make([]int64, len(result))
		for i, p := range result {
			byID[p.ID] = p
			ids[i] = p.ID
		}
		lineRows, err := r.DB.Query(`
			SELECT id, purchase_id, item_id, item_code, item_name, quantity, rate,
			       amount, gst_amount, transport_charge, other_charge, per_item_cost
			FROM purchase_items
			WHERE purchase_id = ANY($1)
			ORDER BY id
		`, pq.Array(ids))
		if err != nil {
			return nil, err
		}
		defer lineRows.Close()
		for lineRows.Next() {
			var l models.PurchaseItem
			err := lineRows.Scan(&l.ID, &l.PurchaseID, &l.ItemID, &l.ItemCode, &l.ItemName,
				&l.Quantity, &l.Rate, &l.Amount, &l.GSTAmount,
				&l.TransportCharge, &l.OtherCharge, &l.PerItemCost)
			if err != nil {
				return nil, err
			}
			if p, ok := byID[l.PurchaseID]; ok {
				p.Items = append(p.Items, l)
			}
		}
		if err := lineRows.Err(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *PostgresPurchaseRepo) GetPurchaseByID(id int64) (*models.Purchase, error) {
	var p models.Purchase
	err := r.DB.QueryRow(`SELECT `+purchaseColumns+` FROM purchases WHERE id=$1`, id).
		Scan(&p.ID, &p.InvoiceNo, &p.PartyID, &p.PartyName, &p.Date,
			&p.Subtotal, &p.TotalGST, &p.GrandTotal, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Items, err = r.GetPurchaseItems(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePurchase rewrites the header and replaces every line, reversing the
// old lines' stock effect before applying the new ones.
func (r *PostgresPurchaseRepo) UpdatePurchase(purchase *models.Purchase) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE purchases SET invoice_no=$1, party_id=$2, party_name=$3, date=$4
		WHERE id=$5
	`, purchase.InvoiceNo, purchase.PartyID, purchase.PartyName, purchase.Date, purchase.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := reversePurchaseLines(tx, purchase.ID); err != nil {
		return err
	}
	for i := range purchase.Items {
		if err := insertPurchaseLine(tx, purchase.ID, &purchase.Items[i]); err != nil {
			return err
		}
	}
	if err := recalcPurchaseTotals(tx, purchase.ID); err != nil {
		return err
	}

	return tx.Commit()
}

// reversePurchaseLines backs the old lines' quantities out of stock and
// deletes them.
func reversePurchaseLines(tx *sql.Tx, purchaseID int64) error {
	rows, err := tx.Query(`
		SELECT item_id, item_code, quantity FROM purchase_items WHERE purchase_id=$1
	`, purchaseID)
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
		if err := adjustStock(tx, o.itemID, o.itemCode, -o.qty); err != nil {
			return err
		}
	}
	_, err = tx.Exec(`DELETE FROM purchase_items WHERE purchase_id=$1`, purchaseID)
	return err
}

func (r *PostgresPurchaseRepo) DeletePurchase(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := reversePurchaseLines(tx, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM purchases WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (r *PostgresPurchaseRepo) GetPurchaseItems(purchaseID int64) ([]models.PurchaseItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, purchase_id, item_id, item_code, item_name, quantity, rate,
		       amount, gst_amount, transport_charge, other_charge, per_item_cost
		FROM purchase_items
		WHERE purchase_id=$1
		ORDER BY id
	`, purchaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.PurchaseItem
	for rows.Next() {
		var l models.PurchaseItem
		err := rows.Scan(&l.ID, &l.PurchaseID, &l.ItemID, &l.ItemCode, &l.ItemName,
			&l.Quantity, &l.Rate, &l.Amount, &l.GSTAmount,
			&l.TransportCharge, &l.OtherCharge, &l.PerItemCost)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *PostgresPurchaseRepo) GetPurchaseItemByID(id int64) (*models.PurchaseItem, error) {
	var l models.PurchaseItem
	err := r.DB.QueryRow(`
		SELECT id, purchase_id, item_id, item_code, item_name, quantity, rate,
		       amount, gst_amount, transport_charge, other_charge, per_item_cost
		FROM purchase_items
		WHERE id=$1
	`, id).Scan(&l.ID, &l.PurchaseID, &l.ItemID, &l.ItemCode, &l.ItemName,
		&l.Quantity, &l.Rate, &l.Amount, &l.GSTAmount,
		&l.TransportCharge, &l.OtherCharge, &l.PerItemCost)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PostgresPurchaseRepo) CreatePurchaseItem(line *models.PurchaseItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertPurchaseLine(tx, line.PurchaseID, line); err != nil {
		return err
	}
	if err := recalcPurchaseTotals(tx, line.PurchaseID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresPurchaseRepo) UpdatePurchaseItem(line *models.PurchaseItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var oldItemID *int64
	var oldCode string
	var oldQty int
	err = tx.QueryRow(`
		SELECT purchase_id, item_id, item_code, quantity FROM purchase_items WHERE id=$1
	`, line.ID).Scan(&line.PurchaseID, &oldItemID, &oldCode, &oldQty)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := adjustStock(tx, oldItemID, oldCode, -oldQty); err != nil {
		return err
	}

	fillPurchaseLine(line)
	_, err = tx.Exec(`
		UPDATE purchase_items SET
			item_id=$1, item_code=$2, item_name=$3, quantity=$4, rate=$5,
			amount=$6, gst_amount=$7, transport_charge=$8, other_charge=$9,
			per_item_cost=$10
		WHERE id=$11
	`,
		line.ItemID, line.ItemCode, line.ItemName, line.Quantity, line.Rate,
		line.Amount, line.GSTAmount, line.TransportCharge, line.OtherCharge,
		line.PerItemCost, line.ID,
	)
	if err != nil {
		return err
	}

	if err := adjustStock(tx, line.ItemID, line.ItemCode, line.Quantity); err != nil {
		return err
	}
	if err := recalcPurchaseTotals(tx, line.PurchaseID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresPurchaseRepo) DeletePurchaseItem(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var purchaseID int64
	var itemID *int64
	var code string
	var qty int
	err = tx.QueryRow(`
		SELECT purchase_id, item_id, item_code, quantity FROM purchase_items WHERE id=$1
	`, id).Scan(&purchaseID, &itemID, &code, &qty)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := adjustStock(tx, itemID, code, -qty); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM purchase_items WHERE id=$1`, id); err != nil {
		return err
	}
	if err := recalcPurchaseTotals(tx, purchaseID); err != nil {
		return err
	}
	return tx.Commit()
}
