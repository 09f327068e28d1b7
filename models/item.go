package models

import "time"

type Item struct {
	ID             int64     `json:"id" db:"id"`
	ItemCode       string    `json:"item_code" db:"item_code"`
	ItemName       string    `json:"item_name" db:"item_name"`
	MRP            float64   `json:"mrp" db:"mrp"`
	GSTPercentage  float64   `json:"gst_percentage" db:"gst_percentage"`
	CurrentStock   int       `json:"current_stock" db:"current_stock"`
	OpeningStock   int       `json:"opening_stock" db:"opening_stock"`
	OpeningCost    float64   `json:"opening_cost" db:"opening_cost"`
	CategoryID     int64     `json:"category_id" db:"category_id"`
	ProductName    *string   `json:"product_name,omitempty" db:"product_name"`
	CompanyName    *string   `json:"company_name,omitempty" db:"company_name"`
	Model          *string   `json:"model,omitempty" db:"model"`
	CompanyBarcode *string   `json:"company_barcode,omitempty" db:"company_barcode"`
	Barcode2       *string   `json:"barcode_2,omitempty" db:"barcode_2"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
