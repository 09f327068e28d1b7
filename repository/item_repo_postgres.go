package repository

import (
	"database/sql"
	"strconv"
	"time"

	"kathasales/codes"
	"kathasales/models"

	"github.com/lib/pq"
)

type PostgresItemRepo struct {
	DB *sql.DB
}

func NewPostgresItemRepo(db *sql.DB) *PostgresItemRepo {
	return &PostgresItemRepo{DB: db}
}

const itemColumns = `
	id, item_code, item_name, mrp, gst_percentage, current_stock,
	opening_stock, opening_cost, category_id, product_name, company_name,
	model, company_barcode, barcode_2, created_at`

func scanItem(row interface{ Scan(...interface{}) error }) (*models.Item, error) {
	var it models.Item
	err := row.Scan(
		&it.ID, &it.ItemCode, &it.ItemName, &it.MRP, &it.GSTPercentage,
		&it.CurrentStock, &it.OpeningStock, &it.OpeningCost, &it.CategoryID,
		&it.ProductName, &it.CompanyName, &it.Model, &it.CompanyBarcode,
		&it.Barcode2, &it.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// CreateItem derives the next code under the item's category and inserts
// both in a single transaction. Opening stock seeds current stock.
func (r *PostgresItemRepo) CreateItem(item *models.Item) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var categoryNumber int
	err = tx.QueryRow(`SELECT category_number FROM categories WHERE id=$1`, item.CategoryID).
		Scan(&categoryNumber)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	catStr := strconv.Itoa(categoryNumber)
	rows, err := tx.Query(`SELECT item_code FROM items WHERE category_id=$1`, item.CategoryID)
	if err != nil {
		return err
	}
	var existing []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			rows.Close()
			return err
		}
		existing = append(existing, code)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	item.ItemCode = codes.NextItemCode(catStr, existing)
	item.CurrentStock = item.OpeningStock

	err = tx.QueryRow(`
		INSERT INTO items(
			item_code, item_name, mrp, gst_percentage, current_stock,
			opening_stock, opening_cost, category_id, product_name,
			company_name, model, company_barcode, barcode_2, created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING id
	`,
		item.ItemCode, item.ItemName, item.MRP, item.GSTPercentage,
		item.CurrentStock, item.OpeningStock, item.OpeningCost,
		item.CategoryID, item.ProductName, item.CompanyName, item.Model,
		item.CompanyBarcode, item.Barcode2, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresItemRepo) MaxItemCode(categoryNumber string) (string, error) {
	// Codes are fixed width within a category, so lexicographic max is the
	// numeric max.
	var last sql.NullString
	err := r.DB.QueryRow(`
		SELECT MAX(item_code) FROM items
		WHERE item_code LIKE $1 || '%' AND LENGTH(item_code) = LENGTH($1) + 2
	`, categoryNumber).Scan(&last)
	if err != nil {
		return "", err
	}
	if !last.Valid {
		return "", nil
	}
	return last.String, nil
}

func (r *PostgresItemRepo) GetItems() ([]*models.Item, error) {
	rows, err := r.DB.Query(`SELECT` + itemColumns + ` FROM items ORDER BY item_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	return result, rows.Err()
}

func (r *PostgresItemRepo) GetItemByID(id int64) (*models.Item, error) {
	it, err := scanItem(r.DB.QueryRow(`SELECT`+itemColumns+` FROM items WHERE id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return it, err
}

func (r *PostgresItemRepo) GetItemByCode(code string) (*models.Item, error) {
	it, err := scanItem(r.DB.QueryRow(`SELECT`+itemColumns+` FROM items WHERE item_code=$1`, code))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return it, err
}

func (r *PostgresItemRepo) UpdateItem(item *models.Item) error {
	res, err := r.DB.Exec(`
		UPDATE items SET
			item_name=$1, mrp=$2, gst_percentage=$3, current_stock=$4,
			opening_stock=$5, opening_cost=$6, product_name=$7,
			company_name=$8, model=$9, company_barcode=$10, barcode_2=$11
		WHERE id=$12
	`,
		item.ItemName, item.MRP, item.GSTPercentage, item.CurrentStock,
		item.OpeningStock, item.OpeningCost, item.ProductName,
		item.CompanyName, item.Model, item.CompanyBarcode, item.Barcode2,
		item.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresItemRepo) DeleteItem(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM items WHERE id=$1`, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "foreign_key_violation" {
			return ErrInUse
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
