package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kathasales/models"
	"kathasales/repository"
)

type ExpenseHandler struct {
	Repo repository.ExpenseRepository
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if expense.Description == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	if err := h.Repo.CreateExpense(&expense); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Repo.GetExpenses()
	if err != nil {
		repoError(w, err)
		return
	}
	if expenses == nil {
		expenses = []*models.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) GetExpenseByID(w http.ResponseWriter, r *http.Request, id string) {
	expenseID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense id")
		return
	}
	expense, err := h.Repo.GetExpenseByID(expenseID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request, id string) {
	expenseID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense id")
		return
	}
	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	expense.ID = expenseID

	if err := h.Repo.UpdateExpense(&expense); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request, id string) {
	expenseID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense id")
		return
	}
	if err := h.Repo.DeleteExpense(expenseID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Expense deleted successfully"})
}
