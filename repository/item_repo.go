package repository

import "kathasales/models"

type ItemRepository interface {
	// CreateItem derives the item code from the category's existing codes
	// and inserts in one transaction. ErrNotFound when the category does
	// not exist.
	CreateItem(item *models.Item) error
	// MaxItemCode returns the highest code currently assigned under a
	// category number, or "" when the category has no items yet.
	MaxItemCode(categoryNumber string) (string, error)
	GetItems() ([]*models.Item, error)
	GetItemByID(id int64) (*models.Item, error)
	GetItemByCode(code string) (*models.Item, error)
	UpdateItem(item *models.Item) error
	DeleteItem(id int64) error
}
