package repository

import (
	"database/sql"
	"time"

	"kathasales/models"

	"github.com/lib/pq"
)

type PostgresChalanRepo struct {
	DB *sql.DB
}

func NewPostgresChalanRepo(db *sql.DB) *PostgresChalanRepo {
	return &PostgresChalanRepo{DB: db}
}

func insertChalanLine(tx *sql.Tx, chalanID int64, line *models.DeliveryChalanItem) error {
	line.ChalanID = chalanID
	err := tx.QueryRow(`
		INSERT INTO delivery_chalan_items(chalan_id, item_id, item_code, item_name, quantity)
		VALUES($1,$2,$3,$4,$5)
		RETURNING id
	`, line.ChalanID, line.ItemID, line.ItemCode, line.ItemName, line.Quantity).Scan(&line.ID)
	if err != nil {
		return err
	}
	return adjustStock(tx, line.ItemID, line.ItemCode, -line.Quantity)
}

func recalcChalanQuantity(tx *sql.Tx, chalanID int64) error {
	_, err := tx.Exec(`
		UPDATE delivery_chalans c SET total_quantity = COALESCE(t.qty, 0)
		FROM (SELECT SUM(quantity) AS qty FROM delivery_chalan_items WHERE chalan_id=$1) t
		WHERE c.id=$1
	`, chalanID)
	return err
}

func (r *PostgresChalanRepo) CreateChalan(chalan *models.DeliveryChalan) error {
	if chalan.CreatedAt.IsZero() {
		chalan.CreatedAt = time.Now().UTC()
	}
	if chalan.Date.IsZero() {
		chalan.Date = chalan.CreatedAt
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO delivery_chalans(chalan_no, party_id, party_name, date, total_quantity, created_at)
		VALUES($1,$2,$3,$4,0,$5)
		RETURNING id
	`, chalan.ChalanNo, chalan.PartyID, chalan.PartyName, chalan.Date, chalan.CreatedAt).
		Scan(&chalan.ID)
	if err != nil {
		return err
	}

	total := 0
	for i := range chalan.Items {
		if err := insertChalanLine(tx, chalan.ID, &chalan.Items[i]); err != nil {
			return err
		}
		total += chalan.Items[i].Quantity
	}
	if err := recalcChalanQuantity(tx, chalan.ID); err != nil {
		return err
	}
	chalan.TotalQuantity = total

	return tx.Commit()
}

const chalanColumns = `id, chalan_no, party_id, party_name, date, total_quantity, created_at`

func (r *PostgresChalanRepo) GetChalans() ([]*models.DeliveryChalan, error) {
	rows, err := r.DB.Query(`SELECT ` + chalanColumns + ` FROM delivery_chalans ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.DeliveryChalan
	for rows.Next() {
		var c models.DeliveryChalan
		err := rows.Scan(&c.ID, &c.ChalanNo, &c.PartyID, &c.PartyName, &c.Date,
			&c.TotalQuantity, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(result) > 0 {
		byID := make(map[int64]*models.DeliveryChalan, len(result))
		ids := make([]int64, len(result))
		for i, c := range result {
			byID[c.ID] = c
			ids[i] = c.ID
		}
		lineRows, err := r.DB.Query(`
			SELECT id, chalan_id, item_id, item_code, item_name, quantity
			FROM delivery_chalan_items
			WHERE chalan_id = ANY($1)
			ORDER BY id
		`, pq.Array(ids))
		if err != nil {
			return nil, err
		}
		defer lineRows.Close()
		for lineRows.Next() {
			var l models.DeliveryChalanItem
			if err := lineRows.Scan(&l.ID, &l.ChalanID, &l.ItemID, &l.ItemCode, &l.ItemName, &l.Quantity); err != nil {
				return nil, err
			}
			if c, ok := byID[l.ChalanID]; ok {
				c.Items = append(c.Items, l)
			}
		}
		if err := lineRows.Err(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *PostgresChalanRepo) GetChalanByID(id int64) (*models.DeliveryChalan, error) {
	var c models.DeliveryChalan
	err := r.DB.QueryRow(`SELECT `+chalanColumns+` FROM delivery_chalans WHERE id=$1`, id).
		Scan(&c.ID, &c.ChalanNo, &c.PartyID, &c.PartyName, &c.Date, &c.TotalQuantity, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c.Items, err = r.GetChalanItems(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresChalanRepo) UpdateChalan(chalan *models.DeliveryChalan) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE delivery_chalans SET chalan_no=$1, party_id=$2, party_name=$3, date=$4
		WHERE id=$5
	`, chalan.ChalanNo, chalan.PartyID, chalan.PartyName, chalan.Date, chalan.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := reverseChalanLines(tx, chalan.ID); err != nil {
		return err
	}
	for i := range chalan.Items {
		if err := insertChalanLine(tx, chalan.ID, &chalan.Items[i]); err != nil {
			return err
		}
	}
	if err := recalcChalanQuantity(tx, chalan.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func reverseChalanLines(tx *sql.Tx, chalanID int64) error {
	rows, err := tx.Query(`SELECT item_id, item_code, quantity FROM delivery_chalan_items WHERE chalan_id=$1`, chalanID)
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
	_, err = tx.Exec(`DELETE FROM delivery_chalan_items WHERE chalan_id=$1`, chalanID)
	return err
}

func (r *PostgresChalanRepo) DeleteChalan(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := reverseChalanLines(tx, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM delivery_chalans WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (r *PostgresChalanRepo) GetChalanItems(chalanID int64) ([]models.DeliveryChalanItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, chalan_id, item_id, item_code, item_name, quantity
		FROM delivery_chalan_items
		WHERE chalan_id=$1
		ORDER BY id
	`, chalanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.DeliveryChalanItem
	for rows.Next() {
		var l models.DeliveryChalanItem
		if err := rows.Scan(&l.ID, &l.ChalanID, &l.ItemID, &l.ItemCode, &l.ItemName, &l.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *PostgresChalanRepo) GetChalanItemByID(id int64) (*models.DeliveryChalanItem, error) {
	var l models.DeliveryChalanItem
	err := r.DB.QueryRow(`
		SELECT id, chalan_id, item_id, item_code, item_name, quantity
		FROM delivery_chalan_items
		WHERE id=$1
	`, id).Scan(&l.ID, &l.ChalanID, &l.ItemID, &l.ItemCode, &l.ItemName, &l.Quantity)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PostgresChalanRepo) CreateChalanItem(line *models.DeliveryChalanItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertChalanLine(tx, line.ChalanID, line); err != nil {
		return err
	}
	if err := recalcChalanQuantity(tx, line.ChalanID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresChalanRepo) UpdateChalanItem(line *models.DeliveryChalanItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var oldItemID *int64
	var oldCode string
	var oldQty int
	err = tx.QueryRow(`
		SELECT chalan_id, item_id, item_code, quantity FROM delivery_chalan_items WHERE id=$1
	`, line.ID).Scan(&line.ChalanID, &oldItemID, &oldCode, &oldQty)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := adjustStock(tx, oldItemID, oldCode, oldQty); err != nil {
		return err
	}
	_, err = tx.Exec(`
		UPDATE delivery_chalan_items SET item_id=$1, item_code=$2, item_name=$3, quantity=$4
		WHERE id=$5
	`, line.ItemID, line.ItemCode, line.ItemName, line.Quantity, line.ID)
	if err != nil {
		return err
	}
	if err := adjustStock(tx, line.ItemID, line.ItemCode, -line.Quantity); err != nil {
		return err
	}
	if err := recalcChalanQuantity(tx, line.ChalanID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresChalanRepo) DeleteChalanItem(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var chalanID int64
	var itemID *int64
	var code string
	var qty int
	err = tx.QueryRow(`
		SELECT chalan_id, item_id, item_code, quantity FROM delivery_chalan_items WHERE id=$1
	`, id).Scan(&chalanID, &itemID, &code, &qty)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := adjustStock(tx, itemID, code, qty); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM delivery_chalan_items WHERE id=$1`, id); err != nil {
		return err
	}
	if err := recalcChalanQuantity(tx, chalanID); err != nil {
		return err
	}
	return tx.Commit()
}
