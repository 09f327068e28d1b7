package models

import "time"

// SaleKind selects which pair of tables a sale lives in. Cash and credit
// sales share the same shape and differ only in how they are settled.
type SaleKind string

const (
	SaleCash   SaleKind = "cash"
	SaleCredit SaleKind = "credit"
)

type Sale struct {
	ID         int64     `json:"id" db:"id"`
	InvoiceNo  string    `json:"invoice_no" db:"invoice_no"`
	PartyID    *int64    `json:"party_id,omitempty" db:"party_id"`
	PartyName  string    `json:"party_name" db:"party_name"`
	Date       time.Time `json:"date" db:"date"`
	Subtotal   float64   `json:"subtotal" db:"subtotal"`
	TotalGST   float64   `json:"total_gst" db:"total_gst"`
	GrandTotal float64   `json:"grand_total" db:"grand_total"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	Items []SaleItem `json:"items,omitempty"`
}

type SaleItem struct {
	ID        int64   `json:"id" db:"id"`
	SaleID    int64   `json:"sale_id" db:"sale_id"`
	ItemID    *int64  `json:"item_id,omitempty" db:"item_id"`
	ItemCode  string  `json:"item_code" db:"item_code"`
	ItemName  string  `json:"item_name" db:"item_name"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Rate      float64 `json:"rate" db:"rate"`
	Amount    float64 `json:"amount" db:"amount"`
	GSTAmount float64 `json:"gst_amount" db:"gst_amount"`
}
