package repository

import "kathasales/models"

type ExpenseRepository interface {
	CreateExpense(expense *models.Expense) error
	GetExpenses() ([]*models.Expense, error)
	GetExpenseByID(id int64) (*models.Expense, error)
	UpdateExpense(expense *models.Expense) error
	DeleteExpense(id int64) error
}
