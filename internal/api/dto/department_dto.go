package dto

import (
	"time"

	"github.com/spec-kit/attendance-service/internal/domain"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// DepartmentRequest carries department create/update payloads.
type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ValidateCreate enforces required fields for creation.
func (r DepartmentRequest) ValidateCreate() error {
	if r.Name == "" {
		return apperrors.NewValidationError("name is required", nil)
	}
	return nil
}

// DepartmentResponse is the wire shape of a department.
type DepartmentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// NewDepartmentResponse maps a domain department.
func NewDepartmentResponse(dept *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
	}
}

// NewDepartmentList maps a slice of departments.
func NewDepartmentList(depts []domain.Department) []DepartmentResponse {
	resp := make([]DepartmentResponse, 0, len(depts))
	for i := range depts {
		resp = append(resp, NewDepartmentResponse(&depts[i]))
	}
	return resp
}
