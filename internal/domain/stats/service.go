package stats

import "context"

type StatsService interface {
	// GetMonthlyStats assembles the hours summary for one user/month from the
	// timesheet, holiday and public-holiday stores. Fetch failures degrade to
	// a zeroed summary: this is a display path where partial data beats a
	// hard failure.
	GetMonthlyStats(ctx context.Context, userID string, year, month int) (MonthlyStats, error)
}
