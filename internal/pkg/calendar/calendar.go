// Package calendar holds the pure date arithmetic shared by the holiday,
// stats, calendar-view and overview services: canonical date formatting,
// weekend classification, month ranges and business-day generation.
//
// Every date that enters a set-membership test or comparison anywhere in the
// application must first pass through Format, so a calendar day has exactly
// one representation ("YYYY-MM-DD").
package calendar

import "time"

// DateLayout is the canonical date form used for comparison, map keys and
// storage. Lexicographic order on formatted dates equals chronological order.
const DateLayout = "2006-01-02"

// Supported planning range. Out-of-range input is clamped, not rejected.
const (
	MinYear = 2020
	MaxYear = 2030
)

// Format canonicalizes a time value to the YYYY-MM-DD form.
func Format(t time.Time) string {
	return t.Format(DateLayout)
}

// Parse parses a canonical YYYY-MM-DD date string.
func Parse(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DayOfWeek returns the day of week with 0 = Sunday .. 6 = Saturday.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ClampYear clamps a year to the supported planning range.
func ClampYear(year int) int {
	if year < MinYear {
		return MinYear
	}
	if year > MaxYear {
		return MaxYear
	}
	return year
}

// ClampMonth clamps a month to [1, 12].
func ClampMonth(month int) int {
	if month < 1 {
		return 1
	}
	if month > 12 {
		return 12
	}
	return month
}

// MonthRange returns the first and last calendar day of the given month.
// Year and month are clamped to the supported range first, so out-of-range
// caller input degrades to the nearest valid month instead of failing.
func MonthRange(year, month int) (time.Time, time.Time) {
	year = ClampYear(year)
	month = ClampMonth(month)

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// WeekdayCount returns the number of non-weekend days in the given month.
// This is the base unit for required-hours computation.
func WeekdayCount(year, month int) int {
	first, last := MonthRange(year, month)

	count := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			count++
		}
	}
	return count
}

// ShiftMonth shifts a year/month pair by offset months, wrapping across year
// boundaries (December -> January and back).
func ShiftMonth(year, month, offset int) (int, int) {
	m := month - 1 + offset
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return year, m + 1
}

// MonthName returns the English month name for a clamped month number.
func MonthName(month int) string {
	return time.Month(ClampMonth(month)).String()
}

// DayName returns the English weekday name for t.
func DayName(t time.Time) string {
	return t.Weekday().String()
}
