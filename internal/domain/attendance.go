package domain

import "time"

// AttendanceStatus enumerates the daily attendance classification.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusLate    AttendanceStatus = "late"
	StatusHalfDay AttendanceStatus = "half_day"
	StatusAbsent  AttendanceStatus = "absent"
	StatusExcused AttendanceStatus = "excused"
)

// ValidStatus reports whether s is a known attendance status.
func ValidStatus(s AttendanceStatus) bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay, StatusAbsent, StatusExcused:
		return true
	}
	return false
}

// ManualOnlyStatus reports whether s may only be set via manual entry.
// Check-in only ever produces present or late.
func ManualOnlyStatus(s AttendanceStatus) bool {
	return s == StatusAbsent || s == StatusHalfDay || s == StatusExcused
}

// AttendanceRecord is the daily attendance row for one staff member.
// At most one record exists per (StaffID, Date); clock times are carried
// as HH:MM:SS strings, nil when not yet recorded.
type AttendanceRecord struct {
	ID          int64
	StaffID     string
	Date        time.Time
	TimeIn      *string
	TimeOut     *string
	Status      AttendanceStatus
	HoursWorked float64
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AttendanceDetail is an attendance record joined with staff and
// department metadata for listing endpoints.
type AttendanceDetail struct {
	AttendanceRecord
	FirstName      string
	LastName       string
	Email          *string
	Position       string
	DepartmentName *string
}

// DailyStats summarizes attendance for one date.
type DailyStats struct {
	TotalStaff     int `json:"total_staff"`
	PresentCount   int `json:"present_count"`
	LateCount      int `json:"late_count"`
	HalfDayCount   int `json:"half_day_count"`
	AbsentCount    int `json:"absent_count"`
	ExcusedCount   int `json:"excused_count"`
	AttendanceRate int `json:"attendance_rate"`
}
