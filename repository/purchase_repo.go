package repository

import "kathasales/models"

type PurchaseRepository interface {
	// CreatePurchase inserts the header with its lines in one transaction,
	// recomputing line per-item costs, the header totals, and the stock of
	// every item on the invoice.
	CreatePurchase(purchase *models.Purchase) error
	GetPurchases() ([]*models.Purchase, error)
	GetPurchaseByID(id int64) (*models.Purchase, error)
	UpdatePurchase(purchase *models.Purchase) error
	DeletePurchase(id int64) error

	GetPurchaseItems(purchaseID int64) ([]models.PurchaseItem, error)
	GetPurchaseItemByID(id int64) (*models.PurchaseItem, error)
	CreatePurchaseItem(line *models.PurchaseItem) error
	UpdatePurchaseItem(line *models.PurchaseItem) error
	DeletePurchaseItem(id int64) error
}
