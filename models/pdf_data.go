package models

// InvoicePDFData is everything the invoice HTML template needs for one copy.
type InvoicePDFData struct {
	Company    *CompanyProfile
	Sale       *Sale
	Kind       SaleKind
	Contacts   string // formatted mobile numbers
	Date       string // formatted invoice date
	Total      float64
	TotalWords string
	CopyTitle  string
	ItemCount  int
}
