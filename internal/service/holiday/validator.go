package holiday

import (
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/calendar"
)

// ValidateInterval checks a proposed holiday interval against the
// business-day rules and, on success, returns the days that would become
// holiday records. It is pure computation over its inputs: no persistence,
// so it is deterministic and unit-testable.
//
// Rules fire in this order, first failure wins:
//  1. the start date must be present and parseable,
//  2. the start date must not fall on a weekend,
//  3. the start date must not be a public holiday,
//  4. the interval must contain at least one business day.
//
// Only the start date is checked against rules 2 and 3; weekend or holiday
// days later in the interval are silently excluded by the generator rather
// than rejected. An end date that is itself a public holiday therefore gets
// no distinct message; a possible future refinement.
func ValidateInterval(startStr, endStr string, publicHolidays map[string]bool) (holiday.ValidationResult, error) {
	if startStr == "" {
		return holiday.ValidationResult{}, holiday.ErrInvalidDate
	}
	start, err := calendar.Parse(startStr)
	if err != nil {
		return holiday.ValidationResult{}, holiday.ErrInvalidDate
	}

	if calendar.IsWeekend(start) {
		return holiday.ValidationResult{}, holiday.ErrWeekendNotAllowed
	}
	if publicHolidays[calendar.Format(start)] {
		return holiday.ValidationResult{}, holiday.ErrPublicHolidayNotAllowed
	}

	end := start
	if endStr != "" {
		end, err = calendar.Parse(endStr)
		if err != nil {
			return holiday.ValidationResult{}, holiday.ErrInvalidDate
		}
	}

	// An inverted interval generates nothing and falls out below as
	// NoValidDays rather than a separate parse error.
	days := calendar.BusinessDays(start, end, publicHolidays)
	if len(days) == 0 {
		return holiday.ValidationResult{}, holiday.ErrNoValidDays
	}

	result := holiday.ValidationResult{Days: days}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if calendar.IsWeekend(d) {
			result.WeekendsExcluded = true
			continue
		}
		if publicHolidays[calendar.Format(d)] {
			result.PublicHolidaysExcluded = true
		}
	}
	result.DaysExcluded = result.WeekendsExcluded || result.PublicHolidaysExcluded

	return result, nil
}

// intervalRange widens the requested interval into the repository range used
// to pre-filter public holidays for validation.
func intervalRange(startStr, endStr string) (holiday.DateRange, error) {
	start, err := calendar.Parse(startStr)
	if err != nil {
		return holiday.DateRange{}, holiday.ErrInvalidDate
	}

	end := start
	if endStr != "" {
		end, err = calendar.Parse(endStr)
		if err != nil {
			return holiday.DateRange{}, holiday.ErrInvalidDate
		}
	}
	if end.Before(start) {
		end = start
	}
	return holiday.DateRange{Start: start, End: end}, nil
}
