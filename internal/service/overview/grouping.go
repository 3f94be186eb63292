package overview

import (
	"sort"
	"time"

	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/overview"
	"github.com/worktrack/worktrack-backend-go/internal/domain/user"
	"github.com/worktrack/worktrack-backend-go/internal/domain/worklocation"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/calendar"
)

// displayLayout is the human-readable date form used in the by-date view.
const displayLayout = "02 Jan 2006"

// GroupByDate builds the who-is-off-on-which-day view from already-fetched
// records. Holiday records are indexed by user first so the build stays
// O(records) instead of rescanning per user.
//
// Entry insertion order follows the first date encountered while scanning
// users in directory order, not chronology; Dates preserves it so callers
// that need chronological order sort the keys themselves.
func GroupByDate(records []holiday.Holiday, users []user.User) overview.ByDateView {
	// Duplicate (user, date) records collapse to one entry so an employee is
	// listed at most once per date.
	byUser := make(map[string][]holiday.Holiday, len(users))
	seen := make(map[string]bool, len(records))
	for _, h := range records {
		dayKey := h.UserID + "|" + calendar.Format(h.Date)
		if seen[dayKey] {
			continue
		}
		seen[dayKey] = true
		byUser[h.UserID] = append(byUser[h.UserID], h)
	}

	view := overview.ByDateView{
		Entries: make(map[string]overview.DateEntry),
	}

	for _, u := range users {
		for _, h := range byUser[u.ID] {
			key := calendar.Format(h.Date)

			entry, ok := view.Entries[key]
			if !ok {
				entry = overview.DateEntry{
					DisplayDate:   h.Date.Format(displayLayout),
					DayOfWeekName: calendar.DayName(h.Date),
				}
				view.Dates = append(view.Dates, key)
			}

			entry.Employees = append(entry.Employees, overview.Employee{
				ID:    u.ID,
				Name:  u.Name,
				Email: u.Email,
			})
			view.Entries[key] = entry
		}
	}

	return view
}

// GroupByPerson tallies per-employee holidays and qualifying remote days and
// buckets them by organizational group.
//
// A remote day requires an explicit remote declaration (IsOnsite == false;
// an absent declaration does not count) on a day that is otherwise a working
// day: not a weekend, not a public holiday, not a personal holiday. Users
// with neither holidays nor remote days are omitted even though they exist
// in the directory. Groups that end up empty are dropped; the rest sort
// alphabetically with the ungrouped bucket last regardless of its name.
func GroupByPerson(
	holidays []holiday.Holiday,
	locations []worklocation.WorkLocation,
	publicHolidays map[string]bool,
	users []user.User,
	groups []user.Group,
	allDays []time.Time,
) overview.ByPersonView {
	holidaysByUser := make(map[string][]holiday.Holiday, len(users))
	for _, h := range holidays {
		holidaysByUser[h.UserID] = append(holidaysByUser[h.UserID], h)
	}

	locationsByUser := make(map[string]map[string]bool, len(users))
	for _, loc := range locations {
		byDate, ok := locationsByUser[loc.UserID]
		if !ok {
			byDate = make(map[string]bool)
			locationsByUser[loc.UserID] = byDate
		}
		byDate[calendar.Format(loc.Date)] = loc.IsOnsite
	}

	groupNames := make(map[int]string, len(groups))
	for _, g := range groups {
		groupNames[g.ID] = g.Name
	}

	buckets := make(map[int]*overview.GroupAggregate)
	var view overview.ByPersonView

	for _, u := range users {
		var holidayDates []string
		personal := make(map[string]bool)
		for _, h := range holidaysByUser[u.ID] {
			key := calendar.Format(h.Date)
			if personal[key] {
				continue
			}
			personal[key] = true
			holidayDates = append(holidayDates, key)
		}

		var remoteDates []string
		if byDate := locationsByUser[u.ID]; byDate != nil {
			for _, day := range allDays {
				key := calendar.Format(day)
				onsite, declared := byDate[key]
				if !declared || onsite {
					continue
				}
				if calendar.IsWeekend(day) || publicHolidays[key] || personal[key] {
					continue
				}
				remoteDates = append(remoteDates, key)
			}
		}

		if len(holidayDates) == 0 && len(remoteDates) == 0 {
			continue
		}

		if len(holidayDates) > 0 {
			view.TotalEmployeesWithHolidays++
		}
		if len(remoteDates) > 0 {
			view.TotalEmployeesWithRemoteWork++
		}

		groupID := user.UngroupedID
		groupName := user.UngroupedName
		if u.GroupID != nil {
			if name, ok := groupNames[*u.GroupID]; ok {
				groupID = *u.GroupID
				groupName = name
			}
		}

		bucket, ok := buckets[groupID]
		if !ok {
			bucket = &overview.GroupAggregate{GroupID: groupID, GroupName: groupName}
			buckets[groupID] = bucket
		}
		bucket.Employees = append(bucket.Employees, overview.EmployeeAggregate{
			ID:              u.ID,
			Name:            u.Name,
			Email:           u.Email,
			HolidayDates:    holidayDates,
			HolidayCount:    len(holidayDates),
			RemoteDates:     remoteDates,
			RemoteDaysCount: len(remoteDates),
		})
	}

	for _, bucket := range buckets {
		view.Groups = append(view.Groups, *bucket)
	}
	sort.Slice(view.Groups, func(i, j int) bool {
		a, b := view.Groups[i], view.Groups[j]
		if a.GroupID == user.UngroupedID {
			return false
		}
		if b.GroupID == user.UngroupedID {
			return true
		}
		return a.GroupName < b.GroupName
	})

	return view
}
