package domain

import (
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrEmployeeEmailTaken = errors.New("employee email already in use")

// Employee is a staff record tied to exactly one department.
//
// DepartmentID is a plain foreign key; Department holds no collection of its
// employees, so the relationship is navigable only Employee→Department.
type Employee struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	FirstName    string    `json:"first_name" bson:"first_name"`
	LastName     string    `json:"last_name" bson:"last_name"`
	Email        string    `json:"email" bson:"email"`
	PhoneNumber  string    `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	HireDate     time.Time `json:"hire_date" bson:"hire_date"`
	Salary       float64   `json:"salary" bson:"salary"`
	JobRole      string    `json:"job_role" bson:"job_role"`
	DepartmentID string    `json:"department_id" bson:"department_id"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
