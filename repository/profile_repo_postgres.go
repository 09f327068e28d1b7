package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"kathasales/models"
)

type PostgresProfileRepo struct {
	DB *sql.DB
}

func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{DB: db}
}

// SaveProfile inserts or updates the business profile. The mobile list is
// stored as JSONB.
func (r *PostgresProfileRepo) SaveProfile(profile *models.CompanyProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	mobileJSON, err := json.Marshal(profile.Mobile)
	if err != nil {
		return err
	}

	if profile.ID > 0 {
		_, err = r.DB.Exec(`
			UPDATE company_profile
			SET company_name=$1, gstin=$2, address=$3, city=$4, state=$5,
				pincode=$6, mobile=$7, footnote=$8
			WHERE id=$9
		`, profile.CompanyName, profile.GSTIN, profile.Address, profile.City,
			profile.State, profile.Pincode, mobileJSON, profile.Footnote, profile.ID)
		return err
	}

	return r.DB.QueryRow(`
		INSERT INTO company_profile
			(company_name, gstin, address, city, state, pincode, mobile, footnote, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`, profile.CompanyName, profile.GSTIN, profile.Address, profile.City,
		profile.State, profile.Pincode, mobileJSON, profile.Footnote, profile.CreatedAt).
		Scan(&profile.ID)
}

// GetProfile fetches the latest business profile; nil when none is set up.
func (r *PostgresProfileRepo) GetProfile() (*models.CompanyProfile, error) {
	profile := &models.CompanyProfile{}
	var mobileJSON []byte

	err := r.DB.QueryRow(`
		SELECT id, company_name, address, city, state, pincode, gstin, footnote, mobile, created_at
		FROM company_profile
		ORDER BY id DESC LIMIT 1
	`).Scan(&profile.ID, &profile.CompanyName, &profile.Address, &profile.City,
		&profile.State, &profile.Pincode, &profile.GSTIN, &profile.Footnote,
		&mobileJSON, &profile.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if len(mobileJSON) > 0 {
		if err := json.Unmarshal(mobileJSON, &profile.Mobile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}
