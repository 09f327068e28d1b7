package models

import "time"

type Party struct {
	ID             int64     `json:"id" db:"id"`
	PartyName      string    `json:"party_name" db:"party_name"`
	PartyType      string    `json:"party_type" db:"party_type"` // purchase | sales
	ContactPerson  *string   `json:"contact_person,omitempty" db:"contact_person"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	Address        *string   `json:"address,omitempty" db:"address"`
	OpeningBalance float64   `json:"opening_balance" db:"opening_balance"`
	BalanceType    string    `json:"balance_type" db:"balance_type"` // dr | cr
	CurrentBalance float64   `json:"current_balance" db:"current_balance"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// PartyLedgerRecord is one receipt or payment on a party's statement with
// the balance after it was posted. Receipts reduce the balance, payments
// raise it.
type PartyLedgerRecord struct {
	Date      time.Time   `json:"date"`
	Kind      VoucherKind `json:"kind"`
	VoucherNo string      `json:"voucher_no"`
	Amount    float64     `json:"amount"`
	Balance   float64     `json:"balance"`
}
