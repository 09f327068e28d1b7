package repository

import "kathasales/models"

// ProfileRepository stores the single business profile printed on invoices.
type ProfileRepository interface {
	SaveProfile(profile *models.CompanyProfile) error
	GetProfile() (*models.CompanyProfile, error)
}
