package timesheet

import "time"

// Entry is one logged chunk of work for a user on a date.
type Entry struct {
	ID     string
	UserID string
	Date   time.Time
	Hours  float64
	Note   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
