package models

import "time"

// Expense is a standalone voucher with no relational linkage.
type Expense struct {
	ID          int64     `json:"id" db:"id"`
	VoucherNo   string    `json:"voucher_no" db:"voucher_no"`
	Date        time.Time `json:"date" db:"date"`
	Description string    `json:"description" db:"description"`
	Category    *string   `json:"category,omitempty" db:"category"`
	Amount      float64   `json:"amount" db:"amount"`
	Mode        *string   `json:"mode,omitempty" db:"mode"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
