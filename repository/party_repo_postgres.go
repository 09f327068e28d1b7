package repository

import (
	"database/sql"
	"sort"
	"time"

	"kathasales/models"

	"github.com/lib/pq"
)

type PostgresPartyRepo struct {
	DB *sql.DB
}

func NewPostgresPartyRepo(db *sql.DB) *PostgresPartyRepo {
	return &PostgresPartyRepo{DB: db}
}

const partyColumns = `
	id, party_name, party_type, contact_person, phone, address,
	opening_balance, balance_type, current_balance, created_at`

func scanParty(row interface{ Scan(...interface{}) error }) (*models.Party, error) {
	var p models.Party
	err := row.Scan(
		&p.ID, &p.PartyName, &p.PartyType, &p.ContactPerson, &p.Phone,
		&p.Address, &p.OpeningBalance, &p.BalanceType, &p.CurrentBalance,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresPartyRepo) CreateParty(party *models.Party) error {
	if party.CreatedAt.IsZero() {
		party.CreatedAt = time.Now().UTC()
	}
	if party.BalanceType == "" {
		party.BalanceType = "dr"
	}
	// A new party's running balance starts at its opening balance.
	party.CurrentBalance = party.OpeningBalance

	return r.DB.QueryRow(`
		INSERT INTO parties(
			party_name, party_type, contact_person, phone, address,
			opening_balance, balance_type, current_balance, created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		party.PartyName, party.PartyType, party.ContactPerson, party.Phone,
		party.Address, party.OpeningBalance, party.BalanceType,
		party.CurrentBalance, party.CreatedAt,
	).Scan(&party.ID)
}

func (r *PostgresPartyRepo) GetParties() ([]*models.Party, error) {
	rows, err := r.DB.Query(`SELECT` + partyColumns + ` FROM parties ORDER BY party_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Party
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *PostgresPartyRepo) GetPartyByID(id int64) (*models.Party, error) {
	p, err := scanParty(r.DB.QueryRow(`SELECT`+partyColumns+` FROM parties WHERE id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PostgresPartyRepo) UpdateParty(party *models.Party) error {
	res, err := r.DB.Exec(`
		UPDATE parties SET
			party_name=$1, party_type=$2, contact_person=$3, phone=$4,
			address=$5, opening_balance=$6, balance_type=$7
		WHERE id=$8
	`,
		party.PartyName, party.PartyType, party.ContactPerson, party.Phone,
		party.Address, party.OpeningBalance, party.BalanceType, party.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPartyRepo) DeleteParty(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM parties WHERE id=$1`, id)
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

// PartyLedger folds the party's receipts and payments over its opening
// balance, oldest first. The stable sort keeps receipts ahead of payments
// on date ties so repeated runs print identically.
func (r *PostgresPartyRepo) PartyLedger(partyID int64) ([]models.PartyLedgerRecord, error) {
	party, err := r.GetPartyByID(partyID)
	if err != nil {
		return nil, err
	}

	var entries []models.PartyLedgerRecord
	load := func(table string, kind models.VoucherKind) error {
		rows, err := r.DB.Query(`SELECT voucher_no, date, amount FROM `+table+` WHERE party_id=$1 ORDER BY date, id`, partyID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			rec := models.PartyLedgerRecord{Kind: kind}
			if err := rows.Scan(&rec.VoucherNo, &rec.Date, &rec.Amount); err != nil {
				return err
			}
			entries = append(entries, rec)
		}
		return rows.Err()
	}
	if err := load("receipts", models.VoucherReceipt); err != nil {
		return nil, err
	}
	if err := load("payments", models.VoucherPayment); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	balance := party.OpeningBalance
	for i := range entries {
		if entries[i].Kind == models.VoucherReceipt {
			balance -= entries[i].Amount
		} else {
			balance += entries[i].Amount
		}
		entries[i].Balance = balance
	}
	return entries, nil
}
