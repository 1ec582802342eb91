package domain

import "time"

// Admin is an administrative account allowed to mutate staff,
// departments, and attendance via manual entry.
type Admin struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
