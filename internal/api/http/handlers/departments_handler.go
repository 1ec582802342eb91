package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/service"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// DepartmentsHandler exposes department endpoints.
type DepartmentsHandler struct {
	org *service.StaffService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(org *service.StaffService) *DepartmentsHandler {
	return &DepartmentsHandler{org: org}
}

func parseDepartmentID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("department id must be numeric", nil)
	}
	return id, nil
}

// List handles GET /api/departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	depts, err := h.org.ListDepartments(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Departments fetched successfully", dto.NewDepartmentList(depts)))
}

// Get handles GET /api/departments/:id.
func (h *DepartmentsHandler) Get(c *fiber.Ctx) error {
	id, err := parseDepartmentID(c)
	if err != nil {
		return err
	}
	dept, err := h.org.GetDepartmentByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Department fetched successfully", dto.NewDepartmentResponse(dept)))
}

// Create handles POST /api/departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.ValidateCreate(); err != nil {
		return err
	}
	dept, err := h.org.CreateDepartment(c.UserContext(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Department created successfully", dto.NewDepartmentResponse(dept)))
}

// Update handles PUT /api/departments/:id.
func (h *DepartmentsHandler) Update(c *fiber.Ctx) error {
	id, err := parseDepartmentID(c)
	if err != nil {
		return err
	}
	dept, err := h.org.GetDepartmentByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name != "" {
		dept.Name = req.Name
	}
	dept.Description = req.Description

	updated, err := h.org.UpdateDepartment(c.UserContext(), dept)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Department updated successfully", dto.NewDepartmentResponse(updated)))
}
