package models

import "time"

// DeliveryChalan is a stock-out voucher with no monetary fields.
type DeliveryChalan struct {
	ID            int64     `json:"id" db:"id"`
	ChalanNo      string    `json:"chalan_no" db:"chalan_no"`
	PartyID       *int64    `json:"party_id,omitempty" db:"party_id"`
	PartyName     string    `json:"party_name" db:"party_name"`
	Date          time.Time `json:"date" db:"date"`
	TotalQuantity int       `json:"total_quantity" db:"total_quantity"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	Items []DeliveryChalanItem `json:"items,omitempty"`
}

type DeliveryChalanItem struct {
	ID       int64  `json:"id" db:"id"`
	ChalanID int64  `json:"chalan_id" db:"chalan_id"`
	ItemID   *int64 `json:"item_id,omitempty" db:"item_id"`
	ItemCode string `json:"item_code" db:"item_code"`
	ItemName string `json:"item_name" db:"item_name"`
	Quantity int    `json:"quantity" db:"quantity"`
}
