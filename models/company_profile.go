package models

import "time"

type MobileEntry struct {
	Number string `json:"number" db:"number"`
	Label  string `json:"label" db:"label"`
}

// CompanyProfile is the single-row business profile printed on invoices.
type CompanyProfile struct {
	ID          int64         `json:"id" db:"id"`
	CompanyName string        `json:"company_name" db:"company_name"`
	Address     string        `json:"address" db:"address"`
	City        string        `json:"city" db:"city"`
	State       string        `json:"state" db:"state"`
	Pincode     string        `json:"pincode" db:"pincode"`
	GSTIN       string        `json:"gstin" db:"gstin"`
	Footnote    string        `json:"footnote" db:"footnote"`
	Mobile      []MobileEntry `json:"mobile" db:"mobile"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}
