package repository

import (
	"database/sql"
	"time"

	"kathasales/codes"
	"kathasales/models"

	"github.com/lib/pq"
)

type PostgresCategoryRepo struct {
	DB *sql.DB
}

func NewPostgresCategoryRepo(db *sql.DB) *PostgresCategoryRepo {
	return &PostgresCategoryRepo{DB: db}
}

type queryer interface {
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// nextCategoryNumber reads the group and its category numbers through q,
// which is either the pool or an open transaction.
func (r *PostgresCategoryRepo) nextCategoryNumber(q queryer, groupID int64) (int, error) {
	var groupNumber int
	err := q.QueryRow(`SELECT group_number FROM groups WHERE id=$1`, groupID).Scan(&groupNumber)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	rows, err := q.Query(`SELECT category_number FROM categories WHERE group_id=$1`, groupID)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var existing []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
		existing = append(existing, n)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	return codes.NextCategoryNumber(groupNumber, existing)
}

func (r *PostgresCategoryRepo) NextCategoryNumber(groupID int64) (int, error) {
	return r.nextCategoryNumber(r.DB, groupID)
}

func (r *PostgresCategoryRepo) CreateCategory(category *models.Category) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	next, err := r.nextCategoryNumber(tx, category.GroupID)
	if err != nil {
		return err
	}
	category.CategoryNumber = next

	err = tx.QueryRow(`
		INSERT INTO categories(category_number, category_name, group_id, created_at)
		VALUES($1, $2, $3, $4)
		RETURNING id
	`, category.CategoryNumber, category.CategoryName, category.GroupID, category.CreatedAt).
		Scan(&category.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresCategoryRepo) GetCategories() ([]*models.Category, error) {
	rows, err := r.DB.Query(`
		SELECT id, category_number, category_name, group_id, created_at
		FROM categories
		ORDER BY category_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.CategoryNumber, &c.CategoryName, &c.GroupID, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}

func (r *PostgresCategoryRepo) GetCategoryByID(id int64) (*models.Category, error) {
	var c models.Category
	err := r.DB.QueryRow(`
		SELECT id, category_number, category_name, group_id, created_at
		FROM categories
		WHERE id=$1
	`, id).Scan(&c.ID, &c.CategoryNumber, &c.CategoryName, &c.GroupID, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresCategoryRepo) UpdateCategory(category *models.Category) error {
	res, err := r.DB.Exec(`
		UPDATE categories SET category_name=$1 WHERE id=$2
	`, category.CategoryName, category.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCategoryRepo) DeleteCategory(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "foreign_key_violation" {
			return ErrInUse
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
