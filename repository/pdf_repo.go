package repository

import (
	"kathasales/models"
)

// PDFRepository pulls together everything invoice rendering needs.
type PDFRepository struct {
	CashSaleRepo   SaleRepository
	CreditSaleRepo SaleRepository
	ProfileRepo    ProfileRepository
}

func NewPDFRepository(cash, credit SaleRepository, profile ProfileRepository) *PDFRepository {
	return &PDFRepository{
		CashSaleRepo:   cash,
		CreditSaleRepo: credit,
		ProfileRepo:    profile,
	}
}

// GetSaleForPDF fetches the sale of the given kind by id.
func (r *PDFRepository) GetSaleForPDF(kind models.SaleKind, id int64) (*models.Sale, error) {
	if kind == models.SaleCredit {
		return r.CreditSaleRepo.GetSaleByID(id)
	}
	return r.CashSaleRepo.GetSaleByID(id)
}

// GetProfileForPDF fetches the business profile printed on the invoice.
func (r *PDFRepository) GetProfileForPDF() (*models.CompanyProfile, error) {
	return r.ProfileRepo.GetProfile()
}
