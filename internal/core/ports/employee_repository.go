package ports

import (
	"context"

	"github.com/orgstack/employee-management/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	// Insert persists a new employee. A colliding email must fail with
	// domain.ErrEmployeeEmailTaken (unique index is the final arbiter).
	Insert(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]*domain.Employee, error)
	// FindByDepartmentID returns the department's employees ordered by
	// last name ascending, then first name ascending.
	FindByDepartmentID(ctx context.Context, departmentID string) ([]*domain.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
