package repository

import (
	"database/sql"
	"time"

	"kathasales/codes"
	"kathasales/models"

	"github.com/lib/pq"
)

type PostgresGroupRepo struct {
	DB *sql.DB
}

func NewPostgresGroupRepo(db *sql.DB) *PostgresGroupRepo {
	return &PostgresGroupRepo{DB: db}
}

// CreateGroup computes the next group number and inserts it inside one
// transaction. The unique index on group_number backstops concurrent
// callers racing to the same number.
func (r *PostgresGroupRepo) CreateGroup(group *models.Group) error {
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now().UTC()
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing []int
	rows, err := tx.Query(`SELECT group_number FROM groups ORDER BY group_number`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			rows.Close()
			return err
		}
		existing = append(existing, n)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	next, err := codes.NextGroupNumber(existing)
	if err != nil {
		return err
	}
	group.GroupNumber = next

	err = tx.QueryRow(`
		INSERT INTO groups(group_number, group_name, created_at)
		VALUES($1, $2, $3)
		RETURNING id
	`, group.GroupNumber, group.GroupName, group.CreatedAt).Scan(&group.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresGroupRepo) GetGroups() ([]*models.Group, error) {
	rows, err := r.DB.Query(`
		SELECT id, group_number, group_name, created_at
		FROM groups
		ORDER BY group_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.GroupNumber, &g.GroupName, &g.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &g)
	}
	return result, rows.Err()
}

func (r *PostgresGroupRepo) GetGroupByID(id int64) (*models.Group, error) {
	var g models.Group
	err := r.DB.QueryRow(`
		SELECT id, group_number, group_name, created_at
		FROM groups
		WHERE id=$1
	`, id).Scan(&g.ID, &g.GroupNumber, &g.GroupName, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PostgresGroupRepo) UpdateGroup(group *models.Group) error {
	res, err := r.DB.Exec(`
		UPDATE groups SET group_name=$1 WHERE id=$2
	`, group.GroupName, group.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresGroupRepo) DeleteGroup(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM groups WHERE id=$1`, id)
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
