package domain

import (
	"regexp"
	"time"
)

// staffIDPattern matches business identifiers such as OJO001.
var staffIDPattern = regexp.MustCompile(`^[A-Z]{3}\d{3}$`)

// ValidStaffID reports whether id matches the AAA### business-key format.
func ValidStaffID(id string) bool {
	return staffIDPattern.MatchString(id)
}

// StaffMember models an employee tracked by the attendance system.
// StaffID is the immutable business key; DepartmentID may be nil for
// unassigned staff and can be reassigned later.
type StaffMember struct {
	ID             int64
	StaffID        string
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	Position       string
	DepartmentID   *int64
	DepartmentName *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
