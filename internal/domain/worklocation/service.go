package worklocation

import "context"

type WorkLocationService interface {
	// SetLocation records an onsite/remote declaration for the given date.
	// Weekends, public holidays and the user's own holidays are rejected.
	SetLocation(ctx context.Context, req SetLocationRequest) (LocationResponse, error)
	// ListMyLocations lists the user's declarations; an empty range defaults
	// to the current month.
	ListMyLocations(ctx context.Context, userID string, startDate, endDate string) ([]LocationResponse, error)
}
