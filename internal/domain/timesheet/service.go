package timesheet

import "context"

type TimesheetService interface {
	LogHours(ctx context.Context, req LogHoursRequest) (EntryResponse, error)
	// ListEntries lists the user's entries; an empty range defaults to the
	// current month.
	ListEntries(ctx context.Context, userID string, startDate, endDate string) ([]EntryResponse, error)
	DeleteEntry(ctx context.Context, id string, userID string) error
}
