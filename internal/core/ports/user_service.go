package ports

import (
	"context"

	"github.com/orgstack/employee-management/internal/core/domain"
)

// UserService defines registration and account management operations.
type UserService interface {
	// Register creates a NORMAL_USER account; the role is never
	// caller-settable at registration time.
	Register(ctx context.Context, username, password, email string) (*domain.User, error)
	// FindByUsername is consumed by the authentication middleware only and is
	// the single place the password hash leaves the service layer.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
}
