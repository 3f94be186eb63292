package timesheet

import (
	"context"

	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
)

type TimesheetRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByUserRange(ctx context.Context, userID string, r holiday.DateRange) ([]Entry, error)
	// MonthlyWorkedHours sums the logged hours of one user for one month.
	MonthlyWorkedHours(ctx context.Context, userID string, year, month int) (float64, error)
	Delete(ctx context.Context, id string, userID string) error
}
