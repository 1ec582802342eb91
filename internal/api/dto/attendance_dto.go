package dto

import (
	"time"

	"github.com/spec-kit/attendance-service/internal/domain"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

const dateLayout = "2006-01-02"

// ParseDate validates a YYYY-MM-DD date string.
func ParseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperrors.NewValidationError(field+" is required", nil)
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field+" must be formatted YYYY-MM-DD", map[string]any{field: value})
	}
	return parsed, nil
}

// CheckInRequest is the POST /api/attendance/checkin payload.
type CheckInRequest struct {
	StaffID string `json:"staff_id"`
	TimeIn  string `json:"time_in"`
	Date    string `json:"date"`
}

// Validate checks field presence and returns the parsed date.
func (r CheckInRequest) Validate() (time.Time, error) {
	if r.StaffID == "" || r.TimeIn == "" || r.Date == "" {
		return time.Time{}, apperrors.NewValidationError("staff_id, time_in, and date are required", nil)
	}
	return ParseDate(r.Date, "date")
}

// CheckOutRequest is the POST /api/attendance/checkout payload.
type CheckOutRequest struct {
	StaffID string `json:"staff_id"`
	TimeOut string `json:"time_out"`
	Date    string `json:"date"`
}

// Validate checks field presence and returns the parsed date.
func (r CheckOutRequest) Validate() (time.Time, error) {
	if r.StaffID == "" || r.TimeOut == "" || r.Date == "" {
		return time.Time{}, apperrors.NewValidationError("staff_id, time_out, and date are required", nil)
	}
	return ParseDate(r.Date, "date")
}

// ManualEntryRequest is the POST /api/attendance/manual payload.
type ManualEntryRequest struct {
	StaffID        string  `json:"staff_id"`
	AttendanceDate string  `json:"attendance_date"`
	TimeIn         *string `json:"time_in,omitempty"`
	TimeOut        *string `json:"time_out,omitempty"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
}

// Validate checks required fields and returns the parsed date.
func (r ManualEntryRequest) Validate() (time.Time, error) {
	if r.StaffID == "" || r.AttendanceDate == "" || r.Status == "" {
		return time.Time{}, apperrors.NewValidationError("staff_id, attendance_date, and status are required", nil)
	}
	if !domain.ValidStatus(domain.AttendanceStatus(r.Status)) {
		return time.Time{}, apperrors.NewValidationError("status must be one of present, late, half_day, absent, excused", map[string]any{"status": r.Status})
	}
	return ParseDate(r.AttendanceDate, "attendance_date")
}

// BulkCheckInRequest is the POST /api/attendance/bulk-checkin payload.
type BulkCheckInRequest struct {
	StaffIDs []string `json:"staff_ids"`
	TimeIn   string   `json:"time_in"`
	Date     string   `json:"date"`
}

// Validate checks field presence and returns the parsed date.
func (r BulkCheckInRequest) Validate() (time.Time, error) {
	if len(r.StaffIDs) == 0 || r.TimeIn == "" || r.Date == "" {
		return time.Time{}, apperrors.NewValidationError("staff_ids, time_in, and date are required", nil)
	}
	return ParseDate(r.Date, "date")
}

// AttendanceRecordResponse is the wire shape of an attendance row.
type AttendanceRecordResponse struct {
	ID             int64   `json:"id"`
	StaffID        string  `json:"staff_id"`
	AttendanceDate string  `json:"attendance_date"`
	TimeIn         *string `json:"time_in"`
	TimeOut        *string `json:"time_out"`
	Status         string  `json:"status"`
	HoursWorked    float64 `json:"hours_worked"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// AttendanceDetailResponse adds joined staff metadata to a record.
type AttendanceDetailResponse struct {
	AttendanceRecordResponse
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          *string `json:"email,omitempty"`
	Position       string  `json:"position"`
	DepartmentName *string `json:"department_name"`
}

// DailyAttendanceResponse pairs records with statistics for one date.
type DailyAttendanceResponse struct {
	Records []AttendanceDetailResponse `json:"records"`
	Stats   domain.DailyStats          `json:"stats"`
}

// NewAttendanceRecordResponse maps a domain record.
func NewAttendanceRecordResponse(rec *domain.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:             rec.ID,
		StaffID:        rec.StaffID,
		AttendanceDate: rec.Date.Format(dateLayout),
		TimeIn:         rec.TimeIn,
		TimeOut:        rec.TimeOut,
		Status:         string(rec.Status),
		HoursWorked:    rec.HoursWorked,
		Notes:          rec.Notes,
		CreatedAt:      rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      rec.UpdatedAt.Format(time.RFC3339),
	}
}

// NewAttendanceDetailResponse maps a joined record.
func NewAttendanceDetailResponse(det *domain.AttendanceDetail) AttendanceDetailResponse {
	return AttendanceDetailResponse{
		AttendanceRecordResponse: NewAttendanceRecordResponse(&det.AttendanceRecord),
		FirstName:                det.FirstName,
		LastName:                 det.LastName,
		Email:                    det.Email,
		Position:                 det.Position,
		DepartmentName:           det.DepartmentName,
	}
}

// NewAttendanceDetailList maps a slice of joined records.
func NewAttendanceDetailList(details []domain.AttendanceDetail) []AttendanceDetailResponse {
	resp := make([]AttendanceDetailResponse, 0, len(details))
	for i := range details {
		resp = append(resp, NewAttendanceDetailResponse(&details[i]))
	}
	return resp
}
