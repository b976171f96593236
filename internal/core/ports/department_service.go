package ports

import (
	"context"

	"github.com/orgstack/employee-management/internal/core/domain"
)

// DepartmentInput carries the writable fields of a department. Updates replace
// both fields; partial updates are not supported.
type DepartmentInput struct {
	Name     string
	Location string
}

// DepartmentService defines use-case operations for departments.
type DepartmentService interface {
	Create(ctx context.Context, input DepartmentInput) (*domain.Department, error)
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, id string, input DepartmentInput) (*domain.Department, error)
	// Delete removes the department without touching employees that reference
	// it; dangling department IDs are accepted behavior.
	Delete(ctx context.Context, id string) error
}
