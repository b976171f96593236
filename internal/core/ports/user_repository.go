package ports

import (
	"context"

	"github.com/orgstack/employee-management/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Insert persists a new user. Unique indexes on username and email are
	// the final arbiter; collisions fail with domain.ErrUsernameTaken or
	// domain.ErrUserEmailTaken.
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
}
