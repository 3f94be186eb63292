package overview

import "context"

type OverviewService interface {
	// ByDate groups the month's holiday records by calendar day.
	ByDate(ctx context.Context, year, month int) (ByDateView, error)
	// ByPerson tallies per-employee holidays and qualifying remote days for
	// the month, bucketed by organizational group.
	ByPerson(ctx context.Context, year, month int) (ByPersonView, error)
}
