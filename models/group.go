package models

import "time"

type Group struct {
	ID          int64     `json:"id" db:"id"`
	GroupNumber int       `json:"group_number" db:"group_number"`
	GroupName   string    `json:"group_name" db:"group_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
