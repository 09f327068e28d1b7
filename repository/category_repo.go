package repository

import "kathasales/models"

type CategoryRepository interface {
	// CreateCategory derives the category number from the group's existing
	// categories and inserts in one transaction.
	CreateCategory(category *models.Category) error
	// NextCategoryNumber previews the number CreateCategory would assign.
	// ErrNotFound when the group does not exist.
	NextCategoryNumber(groupID int64) (int, error)
	GetCategories() ([]*models.Category, error)
	GetCategoryByID(id int64) (*models.Category, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id int64) error
}
