package timesheet

import "errors"

var (
	ErrEntryNotFound = errors.New("Timesheet entry not found")
)
