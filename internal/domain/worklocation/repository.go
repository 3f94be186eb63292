package worklocation

import (
	"context"
	"time"

	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
)

type WorkLocationRepository interface {
	// Upsert creates or replaces the declaration for (user, date).
	Upsert(ctx context.Context, userID string, date time.Time, isOnsite bool) (WorkLocation, error)
	GetByUserRange(ctx context.Context, userID string, r holiday.DateRange) ([]WorkLocation, error)
	GetAllInRange(ctx context.Context, r holiday.DateRange) ([]WorkLocation, error)
}
