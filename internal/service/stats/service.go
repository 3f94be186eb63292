package stats

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/stats"
	"github.com/worktrack/worktrack-backend-go/internal/domain/timesheet"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/calendar"
)

// HoursPerDay is the fixed working-day length used for all hour
// conversions: required hours, personal holiday hours and public holiday
// hours.
const HoursPerDay = 8.0

type StatsServiceImpl struct {
	timesheet.TimesheetRepository
	holiday.HolidayRepository
	holiday.PublicHolidayRepository
}

func NewStatsService(timesheetRepository timesheet.TimesheetRepository, holidayRepository holiday.HolidayRepository, publicHolidayRepository holiday.PublicHolidayRepository) stats.StatsService {
	return &StatsServiceImpl{
		TimesheetRepository:     timesheetRepository,
		HolidayRepository:       holidayRepository,
		PublicHolidayRepository: publicHolidayRepository,
	}
}

// ComputeMonthlyStats derives the required-vs-actual summary for one month
// from already-fetched inputs. Pure computation, deterministic over inputs.
//
// Every date in publicHolidayDates is subtracted from the required-hours
// base as if it fell on a weekday, whether or not it actually does; callers
// that want weekend-falling public holidays excluded from the subtraction
// must pre-filter the list. PublicHolidayHours, by contrast, counts only the
// weekday-falling subset and is informational: it is not added into
// TotalCombinedHours.
func ComputeMonthlyStats(year, month int, workedHours float64, holidayDayCount int, publicHolidayDates []time.Time) stats.MonthlyStats {
	year = calendar.ClampYear(year)
	month = calendar.ClampMonth(month)

	requiredHours := float64(calendar.WeekdayCount(year, month)-len(publicHolidayDates)) * HoursPerDay

	weekdayPublicHolidays := 0
	for _, d := range publicHolidayDates {
		if !calendar.IsWeekend(d) {
			weekdayPublicHolidays++
		}
	}

	holidayHours := float64(holidayDayCount) * HoursPerDay
	combinedHours := workedHours + holidayHours

	remainingHours := requiredHours - combinedHours
	if remainingHours < 0 {
		remainingHours = 0
	}

	return stats.MonthlyStats{
		Year:                 year,
		Month:                month,
		TotalWorkHours:       round2(workedHours),
		HolidayCount:         holidayDayCount,
		TotalHolidayHours:    round2(holidayHours),
		PublicHolidaysCount:  len(publicHolidayDates),
		PublicHolidayHours:   round2(float64(weekdayPublicHolidays) * HoursPerDay),
		TotalCombinedHours:   round2(combinedHours),
		RequiredMonthlyHours: round2(requiredHours),
		RemainingHours:       round2(remainingHours),
	}
}

// GetMonthlyStats implements stats.StatsService. Upstream fetch failures
// degrade to a zeroed summary instead of propagating: this feeds display
// pages where partial data beats a hard failure.
func (s *StatsServiceImpl) GetMonthlyStats(ctx context.Context, userID string, year, month int) (stats.MonthlyStats, error) {
	year = calendar.ClampYear(year)
	month = calendar.ClampMonth(month)

	workedHours, err := s.TimesheetRepository.MonthlyWorkedHours(ctx, userID, year, month)
	if err != nil {
		slog.Error("monthly stats: worked hours fetch failed", "user_id", userID, "error", err)
		workedHours = 0
	}

	first, last := calendar.MonthRange(year, month)
	monthRange := holiday.DateRange{Start: first, End: last}

	holidayDayCount := 0
	if records, err := s.HolidayRepository.GetByUserRange(ctx, userID, monthRange); err != nil {
		slog.Error("monthly stats: holiday fetch failed", "user_id", userID, "error", err)
	} else {
		holidayDayCount = len(records)
	}

	var publicHolidayDates []time.Time
	if records, err := s.PublicHolidayRepository.GetByMonth(ctx, year, month); err != nil {
		slog.Error("monthly stats: public holiday fetch failed", "error", err)
	} else {
		for _, ph := range records {
			publicHolidayDates = append(publicHolidayDates, ph.Date)
		}
	}

	return ComputeMonthlyStats(year, month, workedHours, holidayDayCount, publicHolidayDates), nil
}

// round2 rounds to 2 decimal places. Applied at the point of output only;
// accumulation stays unrounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
