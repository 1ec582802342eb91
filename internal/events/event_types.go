package events

import (
	"time"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCheckInRecorded  EventType = "attendance_checked_in"
	EventCheckOutRecorded EventType = "attendance_checked_out"
	EventManualEntry      EventType = "attendance_manual_entry"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	StaffID   string      `json:"staff_id"`
	Date      string      `json:"date"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CheckInPayload payload.
type CheckInPayload struct {
	TimeIn string                  `json:"time_in"`
	Status domain.AttendanceStatus `json:"status"`
}

// CheckOutPayload payload.
type CheckOutPayload struct {
	TimeOut     string  `json:"time_out"`
	HoursWorked float64 `json:"hours_worked"`
}

// ManualEntryPayload payload.
type ManualEntryPayload struct {
	Status      domain.AttendanceStatus `json:"status"`
	TimeIn      *string                 `json:"time_in,omitempty"`
	TimeOut     *string                 `json:"time_out,omitempty"`
	HoursWorked float64                 `json:"hours_worked"`
	AdminEmail  string                  `json:"admin_email,omitempty"`
}
