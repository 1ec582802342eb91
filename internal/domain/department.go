package domain

import "time"

// Department represents an organizational unit staff can belong to.
// Names are unique; a duplicate create is a conflict, not an overwrite.
type Department struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
