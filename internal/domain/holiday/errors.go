package holiday

import "errors"

// Validation failures are distinct, named outcomes so the caller can render
// a precise message instead of a generic one. All are terminal for the
// request: no partial creation happens.
var (
	ErrInvalidDate             = errors.New("Start date is missing or not a valid date")
	ErrWeekendNotAllowed       = errors.New("Holiday cannot start on a weekend")
	ErrPublicHolidayNotAllowed = errors.New("Holiday cannot start on a public holiday")
	ErrNoValidDays             = errors.New("Requested interval contains no business days")

	ErrHolidayNotFound       = errors.New("Holiday not found")
	ErrNotOwner              = errors.New("Holiday belongs to another user")
	ErrPublicHolidayNotFound = errors.New("Public holiday not found")
	ErrPublicHolidayExists   = errors.New("Public holiday already exists for that date")
)
