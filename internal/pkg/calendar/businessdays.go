package calendar

import "time"

// BusinessDays iterates every calendar day from start to end inclusive and
// returns, in ascending order, the canonical dates that are neither weekends
// nor members of publicHolidays. The holiday set is keyed by canonical date
// and is expected to be pre-filtered to the relevant range by the caller;
// only membership is tested here.
//
// An empty result is valid: an interval made up entirely of weekend and
// holiday days yields no business days, and the caller decides whether that
// means "nothing to do" or "invalid request".
func BusinessDays(start, end time.Time, publicHolidays map[string]bool) []string {
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWeekend(d) {
			continue
		}
		if publicHolidays[Format(d)] {
			continue
		}
		days = append(days, Format(d))
	}
	return days
}

// HolidaySet builds a canonical-date membership set from raw date values.
func HolidaySet(dates []time.Time) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[Format(d)] = true
	}
	return set
}
