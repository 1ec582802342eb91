package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/service"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

// AttendanceHandler exposes check-in/check-out, manual entry, and
// listing endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// ListAll handles GET /api/attendance.
func (h *AttendanceHandler) ListAll(c *fiber.Ctx) error {
	details, err := h.attendance.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("All attendance records fetched successfully", dto.NewAttendanceDetailList(details)))
}

// GetByDate handles GET /api/attendance/date/:date, returning records
// plus daily statistics.
func (h *AttendanceHandler) GetByDate(c *fiber.Ctx) error {
	date, err := dto.ParseDate(c.Params("date"), "date")
	if err != nil {
		return err
	}
	daily, err := h.attendance.GetDailyAttendance(c.UserContext(), date)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Attendance records fetched successfully", dto.DailyAttendanceResponse{
		Records: dto.NewAttendanceDetailList(daily.Records),
		Stats:   daily.Stats,
	}))
}

// GetRange handles GET /api/attendance/range?start_date=&end_date=.
func (h *AttendanceHandler) GetRange(c *fiber.Ctx) error {
	start, err := dto.ParseDate(c.Query("start_date"), "start_date")
	if err != nil {
		return err
	}
	end, err := dto.ParseDate(c.Query("end_date"), "end_date")
	if err != nil {
		return err
	}
	details, err := h.attendance.ListRange(c.UserContext(), start, end)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Attendance records fetched successfully", dto.NewAttendanceDetailList(details)))
}

// CheckIn handles POST /api/attendance/checkin.
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	date, err := req.Validate()
	if err != nil {
		return err
	}
	record, err := h.attendance.CheckIn(c.UserContext(), req.StaffID, date, req.TimeIn)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(
		fmt.Sprintf("Check-in successful for %s", req.StaffID),
		dto.NewAttendanceRecordResponse(record),
	))
}

// CheckOut handles POST /api/attendance/checkout.
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	date, err := req.Validate()
	if err != nil {
		return err
	}
	record, err := h.attendance.CheckOut(c.UserContext(), req.StaffID, date, req.TimeOut)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(
		fmt.Sprintf("Check-out successful for %s", req.StaffID),
		dto.NewAttendanceRecordResponse(record),
	))
}

// CreateManualEntry handles POST /api/attendance/manual.
func (h *AttendanceHandler) CreateManualEntry(c *fiber.Ctx) error {
	admin, _ := auth.AdminFromContext(c)

	var req dto.ManualEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	date, err := req.Validate()
	if err != nil {
		return err
	}
	record, err := h.attendance.CreateManualEntry(c.UserContext(), admin, service.ManualEntryInput{
		StaffID: req.StaffID,
		Date:    date,
		TimeIn:  req.TimeIn,
		TimeOut: req.TimeOut,
		Status:  domain.AttendanceStatus(req.Status),
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Manual attendance entry created successfully", dto.NewAttendanceRecordResponse(record)))
}

// BulkCheckIn handles POST /api/attendance/bulk-checkin.
func (h *AttendanceHandler) BulkCheckIn(c *fiber.Ctx) error {
	var req dto.BulkCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	date, err := req.Validate()
	if err != nil {
		return err
	}
	count, err := h.attendance.BulkCheckIn(c.UserContext(), req.StaffIDs, date, req.TimeIn)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(
		fmt.Sprintf("%d staff checked in", count),
		fiber.Map{"count": count},
	))
}
