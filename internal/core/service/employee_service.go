package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/orgstack/employee-management/internal/core/domain"
	"github.com/orgstack/employee-management/internal/core/ports"
)

// EmployeeService owns the employee lifecycle: email uniqueness, the
// referential check against departments, and read-time denormalization of the
// department name.
type EmployeeService struct {
	repo     ports.EmployeeRepository
	deptRepo ports.DepartmentRepository
	logger   zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, deptRepo ports.DepartmentRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, deptRepo: deptRepo, logger: logger}
}

// Create persists a new employee after the email-uniqueness check and the
// department existence check pass. The returned record carries the department
// name from the same lookup that proved existence.
func (s *EmployeeService) Create(ctx context.Context, input ports.EmployeeInput) (*ports.EmployeeRecord, error) {
	taken, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		s.logger.Warn().Str("email", input.Email).Msg("employee email already in use")
		return nil, domain.ErrEmployeeEmailTaken
	}

	dept, err := s.deptRepo.FindByID(ctx, input.DepartmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.Employee{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		HireDate:     input.HireDate,
		Salary:       input.Salary,
		JobRole:      input.JobRole,
		DepartmentID: dept.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", created.ID).Str("department_id", dept.ID).Msg("employee created")
	return toRecord(created, dept.Name), nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*ports.EmployeeRecord, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRecord(emp, s.departmentName(ctx, emp.DepartmentID)), nil
}

// List returns all employees, each re-denormalized with the current department
// name. Departments are fetched once per call so every record in the response
// reflects the same snapshot.
func (s *EmployeeService) List(ctx context.Context) ([]*ports.EmployeeRecord, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.departmentNames(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*ports.EmployeeRecord, 0, len(emps))
	for _, emp := range emps {
		records = append(records, toRecord(emp, names[emp.DepartmentID]))
	}
	return records, nil
}

// ListByDepartment returns the department's employees ordered by last name
// then first name, both ascending. A missing department is an error, not an
// empty list.
func (s *EmployeeService) ListByDepartment(ctx context.Context, departmentID string) ([]*ports.EmployeeRecord, error) {
	dept, err := s.deptRepo.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	emps, err := s.repo.FindByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	records := make([]*ports.EmployeeRecord, 0, len(emps))
	for _, emp := range emps {
		records = append(records, toRecord(emp, dept.Name))
	}
	return records, nil
}

// Update replaces every mutable field including the department association.
// A changed email must not collide with another employee, and the target
// department must exist.
func (s *EmployeeService) Update(ctx context.Context, id string, input ports.EmployeeInput) (*ports.EmployeeRecord, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != existing.Email {
		taken, err := s.repo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Warn().Str("employee_id", id).Str("email", input.Email).Msg("employee email change collides")
			return nil, domain.ErrEmployeeEmailTaken
		}
	}

	dept, err := s.deptRepo.FindByID(ctx, input.DepartmentID)
	if err != nil {
		return nil, err
	}

	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.Email = input.Email
	existing.PhoneNumber = input.PhoneNumber
	existing.HireDate = input.HireDate
	existing.Salary = input.Salary
	existing.JobRole = input.JobRole
	existing.DepartmentID = dept.ID
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", id).Msg("employee updated")
	return toRecord(existing, dept.Name), nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

// departmentName resolves a single department name at read time. A dangling
// reference (department deleted after the employee was written) resolves to
// an empty name rather than failing the read.
func (s *EmployeeService) departmentName(ctx context.Context, departmentID string) string {
	dept, err := s.deptRepo.FindByID(ctx, departmentID)
	if err != nil {
		if !errors.Is(err, domain.ErrDepartmentNotFound) {
			s.logger.Warn().Err(err).Str("department_id", departmentID).Msg("department lookup failed during denormalization")
		}
		return ""
	}
	return dept.Name
}

func (s *EmployeeService) departmentNames(ctx context.Context) (map[string]string, error) {
	depts, err := s.deptRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(depts))
	for _, d := range depts {
		names[d.ID] = d.Name
	}
	return names, nil
}

func toRecord(e *domain.Employee, departmentName string) *ports.EmployeeRecord {
	return &ports.EmployeeRecord{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		PhoneNumber:    e.PhoneNumber,
		HireDate:       e.HireDate,
		Salary:         e.Salary,
		JobRole:        e.JobRole,
		DepartmentID:   e.DepartmentID,
		DepartmentName: departmentName,
	}
}
