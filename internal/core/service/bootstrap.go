package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orgstack/employee-management/internal/core/domain"
	"github.com/orgstack/employee-management/internal/core/ports"
)

const (
	bootstrapUsername = "admin"
	bootstrapEmail    = "admin@example.com"
)

// EnsureAdminUser seeds the initial admin account when no user named "admin"
// exists yet. It is invoked once from the process entry point and is
// idempotent: subsequent starts find the existing account and do nothing.
func EnsureAdminUser(ctx context.Context, repo ports.UserRepository, password string, logger zerolog.Logger) error {
	_, err := repo.FindByUsername(ctx, bootstrapUsername)
	if err == nil {
		logger.Debug().Msg("admin user already present, skipping bootstrap")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	created, err := repo.Insert(ctx, &domain.User{
		Username:     bootstrapUsername,
		Email:        bootstrapEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent start may have won the insert; the unique index makes
		// that outcome equivalent to finding the user up front.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil
		}
		return err
	}

	logger.Info().Str("user_id", created.ID).Msg("bootstrap admin user created with default credentials, change the password")
	return nil
}
