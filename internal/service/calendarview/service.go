package calendarview

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/worktrack/worktrack-backend-go/internal/domain/calendarview"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/worklocation"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/calendar"
)

type CalendarServiceImpl struct {
	holiday.HolidayRepository
	holiday.PublicHolidayRepository
	worklocation.WorkLocationRepository

	// now is the clock used to classify "today"; overridable in tests.
	now func() time.Time
}

func NewCalendarService(holidayRepository holiday.HolidayRepository, publicHolidayRepository holiday.PublicHolidayRepository, workLocationRepository worklocation.WorkLocationRepository) calendarview.CalendarService {
	return &CalendarServiceImpl{
		HolidayRepository:       holidayRepository,
		PublicHolidayRepository: publicHolidayRepository,
		WorkLocationRepository:  workLocationRepository,
		now:                     time.Now,
	}
}

// userDaySets holds the three membership sets plus the location values for
// one user over one fetched range, keyed by canonical date.
type userDaySets struct {
	holidays       map[string]bool
	publicHolidays map[string]bool
	locations      map[string]bool
}

// fetchRange batch-fetches holiday, public-holiday and work-location records
// for the whole range in three queries, one per record kind, never per day
// or per month. A failed fetch degrades to an empty set so a single bad
// upstream read cannot blank the whole calendar.
func (s *CalendarServiceImpl) fetchRange(ctx context.Context, userID string, r holiday.DateRange) userDaySets {
	sets := userDaySets{
		holidays:       make(map[string]bool),
		publicHolidays: make(map[string]bool),
		locations:      make(map[string]bool),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.HolidayRepository.GetByUserRange(gctx, userID, r)
		if err != nil {
			slog.Error("calendar window: holiday fetch failed", "user_id", userID, "error", err)
			return nil
		}
		for _, h := range records {
			sets.holidays[calendar.Format(h.Date)] = true
		}
		return nil
	})

	g.Go(func() error {
		records, err := s.PublicHolidayRepository.GetByRange(gctx, r)
		if err != nil {
			slog.Error("calendar window: public holiday fetch failed", "error", err)
			return nil
		}
		for _, ph := range records {
			sets.publicHolidays[calendar.Format(ph.Date)] = true
		}
		return nil
	})

	g.Go(func() error {
		records, err := s.WorkLocationRepository.GetByUserRange(gctx, userID, r)
		if err != nil {
			slog.Error("calendar window: work location fetch failed", "user_id", userID, "error", err)
			return nil
		}
		for _, loc := range records {
			sets.locations[calendar.Format(loc.Date)] = loc.IsOnsite
		}
		return nil
	})

	// Closures absorb their own errors, so Wait only orders completion.
	_ = g.Wait()

	return sets
}

// BuildWindow implements calendarview.CalendarService. Months shifted past
// the supported year range are dropped from the window: they have no valid
// days to show, and keeping them would invert the fetch range. The clamped
// center month is always in range, so the window is never empty.
func (s *CalendarServiceImpl) BuildWindow(ctx context.Context, userID string, centerYear, centerMonth, spanBefore, spanAfter int) ([]calendarview.MonthCalendar, error) {
	centerYear = calendar.ClampYear(centerYear)
	centerMonth = calendar.ClampMonth(centerMonth)
	if spanBefore < 0 {
		spanBefore = 0
	}
	if spanAfter < 0 {
		spanAfter = 0
	}

	type yearMonth struct{ year, month int }
	window := make([]yearMonth, 0, spanBefore+spanAfter+1)
	for offset := -spanBefore; offset <= spanAfter; offset++ {
		year, month := calendar.ShiftMonth(centerYear, centerMonth, offset)
		if year < calendar.MinYear || year > calendar.MaxYear {
			continue
		}
		window = append(window, yearMonth{year, month})
	}

	windowStart, _ := calendar.MonthRange(window[0].year, window[0].month)
	_, windowEnd := calendar.MonthRange(window[len(window)-1].year, window[len(window)-1].month)

	sets := s.fetchRange(ctx, userID, holiday.DateRange{Start: windowStart, End: windowEnd})

	months := make([]calendarview.MonthCalendar, 0, len(window))
	for _, ym := range window {
		months = append(months, s.buildMonth(ym.year, ym.month, sets))
	}
	return months, nil
}

func (s *CalendarServiceImpl) buildMonth(year, month int, sets userDaySets) calendarview.MonthCalendar {
	first, last := calendar.MonthRange(year, month)

	var days []calendarview.DayCell
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := calendar.Format(d)

		var isOnsite *bool
		if onsite, declared := sets.locations[key]; declared {
			v := onsite
			isOnsite = &v
		}

		days = append(days, calendarview.DayCell{
			Date:            key,
			IsWeekend:       calendar.IsWeekend(d),
			IsHoliday:       sets.holidays[key],
			IsPublicHoliday: sets.publicHolidays[key],
			IsOnsite:        isOnsite,
		})
	}

	return calendarview.MonthCalendar{
		Year:      year,
		Month:     month,
		MonthName: calendar.MonthName(month),
		Days:      days,
	}
}

// Today implements calendarview.CalendarService. The day is restricted for
// location entry when it is a public holiday, a personal holiday or a
// weekend; a single reason is reported in that priority order.
func (s *CalendarServiceImpl) Today(ctx context.Context, userID string) (calendarview.TodayStatus, error) {
	today := s.now().UTC()
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	sets := s.fetchRange(ctx, userID, holiday.DateRange{Start: day, End: day})

	return ClassifyDay(day, sets.holidays, sets.publicHolidays), nil
}

// ClassifyDay classifies one day for location entry from already-fetched
// membership sets.
func ClassifyDay(day time.Time, holidays, publicHolidays map[string]bool) calendarview.TodayStatus {
	key := calendar.Format(day)
	status := calendarview.TodayStatus{Date: key}

	switch {
	case publicHolidays[key]:
		status.Restricted = true
		status.Reason = "public holiday"
	case holidays[key]:
		status.Restricted = true
		status.Reason = "personal holiday"
	case calendar.IsWeekend(day):
		status.Restricted = true
		status.Reason = "weekend"
	}
	return status
}
