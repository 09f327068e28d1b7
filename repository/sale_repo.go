package repository

import "kathasales/models"

// SaleRepository serves either the cash-sale or the credit-sale tables;
// construct one per kind. Sales take stock out.
type SaleRepository interface {
	CreateSale(sale *models.Sale) error
	GetSales() ([]*models.Sale, error)
	GetSaleByID(id int64) (*models.Sale, error)
	UpdateSale(sale *models.Sale) error
	DeleteSale(id int64) error

	GetSaleItems(saleID int64) ([]models.SaleItem, error)
	GetSaleItemByID(id int64) (*models.SaleItem, error)
	CreateSaleItem(line *models.SaleItem) error
	UpdateSaleItem(line *models.SaleItem) error
	DeleteSaleItem(id int64) error
}
