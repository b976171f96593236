package ports

import (
	"context"
	"time"
)

// EmployeeInput carries all writable employee fields. Updates are a full
// replace of every field including the department association.
type EmployeeInput struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	HireDate     time.Time
	Salary       float64
	JobRole      string
	DepartmentID string
}

// EmployeeRecord is the read model returned by the service. DepartmentName is
// denormalized from the live department record on every read and is never
// stored; a dangling department reference yields an empty name.
type EmployeeRecord struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	HireDate       time.Time
	Salary         float64
	JobRole        string
	DepartmentID   string
	DepartmentName string
}

// EmployeeService defines use-case operations for employees.
type EmployeeService interface {
	Create(ctx context.Context, input EmployeeInput) (*EmployeeRecord, error)
	GetByID(ctx context.Context, id string) (*EmployeeRecord, error)
	List(ctx context.Context) ([]*EmployeeRecord, error)
	// ListByDepartment fails with domain.ErrDepartmentNotFound when the
	// department does not exist; results are ordered (last name, first name).
	ListByDepartment(ctx context.Context, departmentID string) ([]*EmployeeRecord, error)
	Update(ctx context.Context, id string, input EmployeeInput) (*EmployeeRecord, error)
	Delete(ctx context.Context, id string) error
}
