package worklocation

import "time"

// WorkLocation declares a user's onsite/remote status for one date.
// Absence of a record is distinct from an explicit remote declaration.
type WorkLocation struct {
	ID       string
	UserID   string
	Date     time.Time
	IsOnsite bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
