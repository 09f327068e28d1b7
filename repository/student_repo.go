package repository

import "kathasales/models"

// StudentRepository backs the side school module.
type StudentRepository interface {
	CreateStudent(student *models.Student) error
	GetStudents() ([]*models.Student, error)
	GetStudentByID(id string) (*models.Student, error)
	UpdateStudent(student *models.Student) error
	DeleteStudent(id string) error
	// AddFeePayment appends a payment and bumps the fees-paid total.
	AddFeePayment(id string, payment models.FeePayment) error
}
