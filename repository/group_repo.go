package repository

import "kathasales/models"

type GroupRepository interface {
	// CreateGroup derives the next group number and inserts in one
	// transaction. codes.ErrLimitExceeded past group 9.
	CreateGroup(group *models.Group) error
	GetGroups() ([]*models.Group, error)
	GetGroupByID(id int64) (*models.Group, error)
	UpdateGroup(group *models.Group) error
	DeleteGroup(id int64) error
}
