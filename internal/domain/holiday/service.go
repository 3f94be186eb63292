package holiday

import "context"

type HolidayService interface {
	// CreateHolidays validates the requested interval and creates one holiday
	// record per business day in it, atomically.
	CreateHolidays(ctx context.Context, req CreateHolidayRequest) (CreateHolidayResponse, error)
	// DeleteHoliday removes a single holiday day. Only the owning user or an
	// admin may delete it.
	DeleteHoliday(ctx context.Context, id string, requesterID string, isAdmin bool) error
	ListMyHolidays(ctx context.Context, userID string, startDate, endDate string) ([]HolidayResponse, error)

	CreatePublicHoliday(ctx context.Context, req CreatePublicHolidayRequest) (PublicHolidayResponse, error)
	ListPublicHolidays(ctx context.Context, year, month int) ([]PublicHolidayResponse, error)
	DeletePublicHoliday(ctx context.Context, id string) error
}
