package handlers

import (
	"encoding/json"
	"net/http"

	"kathasales/models"
	"kathasales/repository"
)

type StudentHandler struct {
	Repo repository.StudentRepository
}

func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var student models.Student
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if student.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.Repo.CreateStudent(&student); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, student)
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.Repo.GetStudents()
	if err != nil {
		repoError(w, err)
		return
	}
	if students == nil {
		students = []*models.Student{}
	}
	writeJSON(w, http.StatusOK, students)
}

func (h *StudentHandler) GetStudentByID(w http.ResponseWriter, r *http.Request, id string) {
	student, err := h.Repo.GetStudentByID(id)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request, id string) {
	var student models.Student
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	student.ID = id

	if err := h.Repo.UpdateStudent(&student); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.DeleteStudent(id); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Student deleted successfully"})
}

// AddFeePayment appends one fee payment to a student's record.
func (h *StudentHandler) AddFeePayment(w http.ResponseWriter, r *http.Request, id string) {
	var payment models.FeePayment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payment.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	if err := h.Repo.AddFeePayment(id, payment); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Fee payment recorded"})
}
