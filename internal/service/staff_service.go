package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// StaffService manages staff members and departments.
type StaffService struct {
	departments repository.DepartmentRepository
	staff       repository.StaffRepository
}

// OrgDependencies encapsulates repositories required for org management.
type OrgDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	StaffRepo      repository.StaffRepository
}

// NewStaffService constructs the service.
func NewStaffService(deps OrgDependencies) *StaffService {
	return &StaffService{
		departments: deps.DepartmentRepo,
		staff:       deps.StaffRepo,
	}
}

// StaffInput carries creatable/updatable staff fields.
type StaffInput struct {
	StaffID      string
	FirstName    string
	LastName     string
	Email        *string
	Phone        *string
	Position     string
	DepartmentID *int64
}

// CreateDepartment creates a new department; duplicate names conflict.
func (s *StaffService) CreateDepartment(ctx context.Context, name, description string) (*domain.Department, error) {
	dept := &domain.Department{
		Name:        name,
		Description: description,
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// ListDepartments returns all departments ordered by name.
func (s *StaffService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return depts, nil
}

// GetDepartmentByID fetches a department.
func (s *StaffService) GetDepartmentByID(ctx context.Context, id int64) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// UpdateDepartment modifies department metadata.
func (s *StaffService) UpdateDepartment(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	if err := s.departments.Update(ctx, dept); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", map[string]any{"id": dept.ID})
		}
		return nil, apperrors.MapError(err)
	}
	return dept, nil
}

// CreateStaffMember registers a new staff member. The business key must
// match the AAA### format and is immutable afterwards.
func (s *StaffService) CreateStaffMember(ctx context.Context, input StaffInput) (*domain.StaffMember, error) {
	if !domain.ValidStaffID(input.StaffID) {
		return nil, apperrors.NewValidationError("staff_id must match format AAA###", map[string]any{"staff_id": input.StaffID})
	}
	if input.DepartmentID != nil {
		if _, err := s.GetDepartmentByID(ctx, *input.DepartmentID); err != nil {
			return nil, err
		}
	}

	staff := &domain.StaffMember{
		StaffID:      input.StaffID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Position:     input.Position,
		DepartmentID: input.DepartmentID,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// ListStaffMembers lists staff with optional department filtering.
func (s *StaffService) ListStaffMembers(ctx context.Context, filter repository.StaffFilter) ([]domain.StaffMember, error) {
	list, err := s.staff.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// GetStaffMember fetches a staff member by business key.
func (s *StaffService) GetStaffMember(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	staff, err := s.staff.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"staff_id": staffID})
		}
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// UpdateStaffMember updates mutable staff fields, including department
// reassignment. The staff_id itself never changes.
func (s *StaffService) UpdateStaffMember(ctx context.Context, input StaffInput) (*domain.StaffMember, error) {
	staff, err := s.GetStaffMember(ctx, input.StaffID)
	if err != nil {
		return nil, err
	}
	if input.DepartmentID != nil {
		if _, err := s.GetDepartmentByID(ctx, *input.DepartmentID); err != nil {
			return nil, err
		}
	}

	if input.FirstName != "" {
		staff.FirstName = input.FirstName
	}
	if input.LastName != "" {
		staff.LastName = input.LastName
	}
	if input.Email != nil {
		staff.Email = input.Email
	}
	if input.Phone != nil {
		staff.Phone = input.Phone
	}
	if input.Position != "" {
		staff.Position = input.Position
	}
	staff.DepartmentID = input.DepartmentID

	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.GetStaffMember(ctx, input.StaffID)
}
