package models

import "time"

type Category struct {
	ID             int64     `json:"id" db:"id"`
	CategoryNumber int       `json:"category_number" db:"category_number"`
	CategoryName   string    `json:"category_name" db:"category_name"`
	GroupID        int64     `json:"group_id" db:"group_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
