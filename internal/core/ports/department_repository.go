package ports

import (
	"context"

	"github.com/orgstack/employee-management/internal/core/domain"
)

// DepartmentRepository defines persistence operations for departments.
//
// Insert must fail with domain.ErrDepartmentNameTaken when the name collides
// with an existing department; a unique index is the final arbiter even when
// the service-level existence check raced.
type DepartmentRepository interface {
	Insert(ctx context.Context, d *domain.Department) (*domain.Department, error)
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	FindAll(ctx context.Context) ([]*domain.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, d *domain.Department) error
	Delete(ctx context.Context, id string) error
}
