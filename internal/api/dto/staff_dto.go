package dto

import (
	"time"

	"github.com/spec-kit/attendance-service/internal/domain"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// StaffRequest carries staff create/update payloads.
type StaffRequest struct {
	StaffID      string  `json:"staff_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Position     string  `json:"position"`
	DepartmentID *int64  `json:"department_id,omitempty"`
}

// ValidateCreate enforces required fields for creation.
func (r StaffRequest) ValidateCreate() error {
	if r.StaffID == "" || r.FirstName == "" || r.LastName == "" {
		return apperrors.NewValidationError("staff_id, first_name, and last_name are required", nil)
	}
	return nil
}

// StaffResponse is the wire shape of a staff member.
type StaffResponse struct {
	ID             int64   `json:"id"`
	StaffID        string  `json:"staff_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Position       string  `json:"position"`
	DepartmentID   *int64  `json:"department_id"`
	DepartmentName *string `json:"department_name"`
	CreatedAt      string  `json:"created_at"`
}

// NewStaffResponse maps a domain staff member.
func NewStaffResponse(staff *domain.StaffMember) StaffResponse {
	return StaffResponse{
		ID:             staff.ID,
		StaffID:        staff.StaffID,
		FirstName:      staff.FirstName,
		LastName:       staff.LastName,
		Email:          staff.Email,
		Phone:          staff.Phone,
		Position:       staff.Position,
		DepartmentID:   staff.DepartmentID,
		DepartmentName: staff.DepartmentName,
		CreatedAt:      staff.CreatedAt.Format(time.RFC3339),
	}
}

// NewStaffList maps a slice of staff members.
func NewStaffList(list []domain.StaffMember) []StaffResponse {
	resp := make([]StaffResponse, 0, len(list))
	for i := range list {
		resp = append(resp, NewStaffResponse(&list[i]))
	}
	return resp
}
