package repository

import (
	"database/sql"
	"time"

	"kathasales/models"
)

type PostgresVoucherRepo struct {
	DB   *sql.DB
	Kind models.VoucherKind
}

func NewPostgresVoucherRepo(db *sql.DB, kind models.VoucherKind) *PostgresVoucherRepo {
	return &PostgresVoucherRepo{DB: db, Kind: kind}
}

func (r *PostgresVoucherRepo) table() string {
	if r.Kind == models.VoucherPayment {
		return "payments"
	}
	return "receipts"
}

// postBalance applies amount to the party's running balance. Receipts
// reduce it, payments raise it; pass a negative amount to reverse.
func (r *PostgresVoucherRepo) postBalance(tx *sql.Tx, partyID int64, amount float64) error {
	delta := amount
	if r.Kind == models.VoucherReceipt {
		delta = -amount
	}
	res, err := tx.Exec(`UPDATE parties SET current_balance = current_balance + $1 WHERE id=$2`, delta, partyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresVoucherRepo) CreateVoucher(voucher *models.Voucher) error {
	if voucher.CreatedAt.IsZero() {
		voucher.CreatedAt = time.Now().UTC()
	}
	if voucher.Date.IsZero() {
		voucher.Date = voucher.CreatedAt
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO `+r.table()+`(voucher_no, party_id, date, amount, mode, remarks, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, voucher.VoucherNo, voucher.PartyID, voucher.Date, voucher.Amount,
		voucher.Mode, voucher.Remarks, voucher.CreatedAt).Scan(&voucher.ID)
	if err != nil {
		return err
	}

	if err := r.postBalance(tx, voucher.PartyID, voucher.Amount); err != nil {
		return err
	}

	return tx.Commit()
}

const voucherColumns = `v.id, v.voucher_no, v.party_id, v.date, v.amount, v.mode, v.remarks, v.created_at, COALESCE(p.party_name, '')`

func scanVoucher(row interface{ Scan(...interface{}) error }) (*models.Voucher, error) {
	var v models.Voucher
	err := row.Scan(&v.ID, &v.VoucherNo, &v.PartyID, &v.Date, &v.Amount,
		&v.Mode, &v.Remarks, &v.CreatedAt, &v.PartyName)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PostgresVoucherRepo) GetVouchers() ([]*models.Voucher, error) {
	rows, err := r.DB.Query(`
		SELECT ` + voucherColumns + `
		FROM ` + r.table() + ` v
		LEFT JOIN parties p ON v.party_id = p.id
		ORDER BY v.date DESC, v.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *PostgresVoucherRepo) GetVoucherByID(id int64) (*models.Voucher, error) {
	v, err := scanVoucher(r.DB.QueryRow(`
		SELECT `+voucherColumns+`
		FROM `+r.table()+` v
		LEFT JOIN parties p ON v.party_id = p.id
		WHERE v.id=$1
	`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return v, err
}

// UpdateVoucher reverses the old posting and applies the new one, so edits
// to the amount or the party keep every balance straight.
func (r *PostgresVoucherRepo) UpdateVoucher(voucher *models.Voucher) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var oldPartyID int64
	var oldAmount float64
	err = tx.QueryRow(`SELECT party_id, amount FROM `+r.table()+` WHERE id=$1`, voucher.ID).
		Scan(&oldPartyID, &oldAmount)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := r.postBalance(tx, oldPartyID, -oldAmount); err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE `+r.table()+` SET voucher_no=$1, party_id=$2, date=$3, amount=$4, mode=$5, remarks=$6
		WHERE id=$7
	`, voucher.VoucherNo, voucher.PartyID, voucher.Date, voucher.Amount,
		voucher.Mode, voucher.Remarks, voucher.ID)
	if err != nil {
		return err
	}

	if err := r.postBalance(tx, voucher.PartyID, voucher.Amount); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresVoucherRepo) DeleteVoucher(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var partyID int64
	var amount float64
	err = tx.QueryRow(`SELECT party_id, amount FROM `+r.table()+` WHERE id=$1`, id).
		Scan(&partyID, &amount)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := r.postBalance(tx, partyID, -amount); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM `+r.table()+` WHERE id=$1`, id); err != nil {
		return err
	}

	return tx.Commit()
}
