package calendarview

import "context"

type CalendarService interface {
	// BuildWindow produces a contiguous window of month calendars around the
	// center month, spanBefore months back through spanAfter months forward.
	// Records are fetched once for the whole span, not per month.
	BuildWindow(ctx context.Context, userID string, centerYear, centerMonth, spanBefore, spanAfter int) ([]MonthCalendar, error)
	// Today classifies the current day for location entry.
	Today(ctx context.Context, userID string) (TodayStatus, error)
}
