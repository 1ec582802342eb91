package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/internal/service"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// StaffHandler exposes staff member endpoints.
type StaffHandler struct {
	org *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(org *service.StaffService) *StaffHandler {
	return &StaffHandler{org: org}
}

// List handles GET /api/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	filter := repository.StaffFilter{}
	if val := c.Query("department_id"); val != "" {
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return apperrors.NewValidationError("department_id must be numeric", nil)
		}
		filter.DepartmentID = &id
	}
	if val := c.Query("position"); val != "" {
		filter.Position = &val
	}

	list, err := h.org.ListStaffMembers(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Staff fetched successfully", dto.NewStaffList(list)))
}

// Get handles GET /api/staff/:staffId.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	staff, err := h.org.GetStaffMember(c.UserContext(), c.Params("staffId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Staff member fetched successfully", dto.NewStaffResponse(staff)))
}

// Create handles POST /api/staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.ValidateCreate(); err != nil {
		return err
	}

	staff, err := h.org.CreateStaffMember(c.UserContext(), service.StaffInput{
		StaffID:      req.StaffID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("Staff member created successfully", dto.NewStaffResponse(staff)))
}

// Update handles PUT /api/staff/:staffId.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	staff, err := h.org.UpdateStaffMember(c.UserContext(), service.StaffInput{
		StaffID:      c.Params("staffId"),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Staff member updated successfully", dto.NewStaffResponse(staff)))
}
