package repository

import (
	"database/sql"
	"time"

	"kathasales/models"
)

type PostgresExpenseRepo struct {
	DB *sql.DB
}

func NewPostgresExpenseRepo(db *sql.DB) *PostgresExpenseRepo {
	return &PostgresExpenseRepo{DB: db}
}

func (r *PostgresExpenseRepo) CreateExpense(expense *models.Expense) error {
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now().UTC()
	}
	if expense.Date.IsZero() {
		expense.Date = expense.CreatedAt
	}
	return r.DB.QueryRow(`
		INSERT INTO expenses(voucher_no, date, description, category, amount, mode, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, expense.VoucherNo, expense.Date, expense.Description, expense.Category,
		expense.Amount, expense.Mode, expense.CreatedAt).Scan(&expense.ID)
}

const expenseColumns = `id, voucher_no, date, description, category, amount, mode, created_at`

func scanExpense(row interface{ Scan(...interface{}) error }) (*models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.VoucherNo, &e.Date, &e.Description, &e.Category,
		&e.Amount, &e.Mode, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresExpenseRepo) GetExpenses() ([]*models.Expense, error) {
	rows, err := r.DB.Query(`SELECT ` + expenseColumns + ` FROM expenses ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (r *PostgresExpenseRepo) GetExpenseByID(id int64) (*models.Expense, error) {
	e, err := scanExpense(r.DB.QueryRow(`SELECT `+expenseColumns+` FROM expenses WHERE id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return e, err
}

func (r *PostgresExpenseRepo) UpdateExpense(expense *models.Expense) error {
	res, err := r.DB.Exec(`
		UPDATE expenses SET voucher_no=$1, date=$2, description=$3, category=$4, amount=$5, mode=$6
		WHERE id=$7
	`, expense.VoucherNo, expense.Date, expense.Description, expense.Category,
		expense.Amount, expense.Mode, expense.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresExpenseRepo) DeleteExpense(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
