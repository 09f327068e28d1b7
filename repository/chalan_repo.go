package repository

import "kathasales/models"

// ChalanRepository manages delivery chalans, the stock-out vouchers with no
// monetary side.
type ChalanRepository interface {
	CreateChalan(chalan *models.DeliveryChalan) error
	GetChalans() ([]*models.DeliveryChalan, error)
	GetChalanByID(id int64) (*models.DeliveryChalan, error)
	UpdateChalan(chalan *models.DeliveryChalan) error
	DeleteChalan(id int64) error

	GetChalanItems(chalanID int64) ([]models.DeliveryChalanItem, error)
	GetChalanItemByID(id int64) (*models.DeliveryChalanItem, error)
	CreateChalanItem(line *models.DeliveryChalanItem) error
	UpdateChalanItem(line *models.DeliveryChalanItem) error
	DeleteChalanItem(id int64) error
}
