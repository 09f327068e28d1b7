package models

import "time"

// VoucherKind tags a party posting. Receipts reduce a party's balance,
// payments raise it.
type VoucherKind string

const (
	VoucherReceipt VoucherKind = "receipt"
	VoucherPayment VoucherKind = "payment"
)

// Voucher is a receipt or payment posted against a party.
type Voucher struct {
	ID        int64     `json:"id" db:"id"`
	VoucherNo string    `json:"voucher_no" db:"voucher_no"`
	PartyID   int64     `json:"party_id" db:"party_id"`
	Date      time.Time `json:"date" db:"date"`
	Amount    float64   `json:"amount" db:"amount"`
	Mode      *string   `json:"mode,omitempty" db:"mode"` // cash | cheque | upi ...
	Remarks   *string   `json:"remarks,omitempty" db:"remarks"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	PartyName string `json:"party_name,omitempty" db:"party_name"`
}
