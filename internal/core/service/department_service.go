package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/orgstack/employee-management/internal/core/domain"
	"github.com/orgstack/employee-management/internal/core/ports"
)

// DepartmentService owns the department lifecycle and the name-uniqueness rule.
type DepartmentService struct {
	repo   ports.DepartmentRepository
	logger zerolog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, logger: logger}
}

// Create persists a new department. The name must not be in use; the match is
// case-sensitive and exact.
func (s *DepartmentService) Create(ctx context.Context, input ports.DepartmentInput) (*domain.Department, error) {
	taken, err := s.repo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		s.logger.Warn().Str("name", input.Name).Msg("department name already in use")
		return nil, domain.ErrDepartmentNameTaken
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.Department{
		Name:      input.Name,
		Location:  input.Location,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("department_id", created.ID).Str("name", created.Name).Msg("department created")
	return created, nil
}

func (s *DepartmentService) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DepartmentService) List(ctx context.Context) ([]*domain.Department, error) {
	return s.repo.FindAll(ctx)
}

// Update replaces both writable fields. A changed name must not collide with
// another department; keeping the current name is always allowed.
func (s *DepartmentService) Update(ctx context.Context, id string, input ports.DepartmentInput) (*domain.Department, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != existing.Name {
		taken, err := s.repo.ExistsByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Warn().Str("department_id", id).Str("name", input.Name).Msg("department rename collides")
			return nil, domain.ErrDepartmentNameTaken
		}
	}

	existing.Name = input.Name
	existing.Location = input.Location
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.Info().Str("department_id", id).Msg("department updated")
	return existing, nil
}

// Delete removes the department by id. Employees referencing it are left
// untouched; their department_id dangles until reassigned.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("department_id", id).Msg("department deleted")
	return nil
}
