package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, userID string, date time.Time) (Holiday, error)
	Exists(ctx context.Context, userID string, date time.Time) (bool, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	GetByUserRange(ctx context.Context, userID string, r DateRange) ([]Holiday, error)
	GetAllInRange(ctx context.Context, r DateRange) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}

type PublicHolidayRepository interface {
	Create(ctx context.Context, date time.Time, name string) (PublicHoliday, error)
	GetByRange(ctx context.Context, r DateRange) ([]PublicHoliday, error)
	GetByMonth(ctx context.Context, year, month int) ([]PublicHoliday, error)
	Delete(ctx context.Context, id string) error
}
