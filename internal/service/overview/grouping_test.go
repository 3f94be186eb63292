package overview

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/user"
	"github.com/worktrack/worktrack-backend-go/internal/domain/worklocation"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/calendar"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.Parse(s)
	require.NoError(t, err)
	return d
}

func monthDays(t *testing.T, year, month int) []time.Time {
	t.Helper()
	first, last := calendar.MonthRange(year, month)
	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func groupID(id int) *int { return &id }

func TestGroupByDate(t *testing.T) {
	t.Parallel()

	users := []user.User{
		{ID: "u-1", Name: "Alice", Email: "alice@example.com"},
		{ID: "u-2", Name: "Bob", Email: "bob@example.com"},
	}
	records := []holiday.Holiday{
		{ID: "h-1", UserID: "u-1", Date: mustParse(t, "2024-05-06")},
		{ID: "h-2", UserID: "u-2", Date: mustParse(t, "2024-05-06")},
		{ID: "h-3", UserID: "u-2", Date: mustParse(t, "2024-05-07")},
	}

	view := GroupByDate(records, users)

	require.Len(t, view.Entries, 2)
	require.Contains(t, view.Entries, "2024-05-06")
	require.Contains(t, view.Entries, "2024-05-07")

	entry := view.Entries["2024-05-06"]
	assert.Equal(t, "06 May 2024", entry.DisplayDate)
	assert.Equal(t, "Monday", entry.DayOfWeekName)
	require.Len(t, entry.Employees, 2)
	assert.Equal(t, "Alice", entry.Employees[0].Name)
	assert.Equal(t, "Bob", entry.Employees[1].Name)

	assert.Len(t, view.Entries["2024-05-07"].Employees, 1)
}

func TestGroupByDate_InsertionOrderFollowsDirectoryScan(t *testing.T) {
	t.Parallel()

	// Alice's later date is encountered before Bob's earlier one, so the
	// insertion order is not chronological. Callers sort if they need to.
	users := []user.User{
		{ID: "u-1", Name: "Alice"},
		{ID: "u-2", Name: "Bob"},
	}
	records := []holiday.Holiday{
		{ID: "h-1", UserID: "u-1", Date: mustParse(t, "2024-05-20")},
		{ID: "h-2", UserID: "u-2", Date: mustParse(t, "2024-05-02")},
	}

	view := GroupByDate(records, users)
	require.Equal(t, []string{"2024-05-20", "2024-05-02"}, view.Dates)

	sorted := append([]string(nil), view.Dates...)
	sort.Strings(sorted)
	assert.Equal(t, []string{"2024-05-02", "2024-05-20"}, sorted)
}

func TestGroupByDate_DuplicateRecordsCollapse(t *testing.T) {
	t.Parallel()

	// Two records for the same user and date, as the accepted insert race can
	// leave behind. The employee is listed once.
	users := []user.User{
		{ID: "u-1", Name: "Alice", Email: "alice@example.com"},
		{ID: "u-2", Name: "Bob", Email: "bob@example.com"},
	}
	records := []holiday.Holiday{
		{ID: "h-1", UserID: "u-1", Date: mustParse(t, "2024-05-06")},
		{ID: "h-2", UserID: "u-1", Date: mustParse(t, "2024-05-06")},
		{ID: "h-3", UserID: "u-2", Date: mustParse(t, "2024-05-06")},
	}

	view := GroupByDate(records, users)

	entry := view.Entries["2024-05-06"]
	require.Len(t, entry.Employees, 2)
	assert.Equal(t, "Alice", entry.Employees[0].Name)
	assert.Equal(t, "Bob", entry.Employees[1].Name)
}

func TestGroupByDate_EmptyInputs(t *testing.T) {
	t.Parallel()

	view := GroupByDate(nil, nil)
	assert.Empty(t, view.Dates)
	assert.Empty(t, view.Entries)
}

func TestGroupByPerson_TalliesAndOmissions(t *testing.T) {
	t.Parallel()

	users := []user.User{
		{ID: "u-a", Name: "Alice", Email: "alice@example.com", GroupID: groupID(1)},
		{ID: "u-b", Name: "Bob", Email: "bob@example.com", GroupID: groupID(1)},
	}
	groups := []user.Group{{ID: 1, Name: "Engineering"}}

	holidays := []holiday.Holiday{
		{ID: "h-1", UserID: "u-a", Date: mustParse(t, "2024-05-06")},
		{ID: "h-2", UserID: "u-a", Date: mustParse(t, "2024-05-07")},
		{ID: "h-3", UserID: "u-a", Date: mustParse(t, "2024-05-08")},
	}
	locations := []worklocation.WorkLocation{
		{UserID: "u-a", Date: mustParse(t, "2024-05-09"), IsOnsite: false},
		{UserID: "u-a", Date: mustParse(t, "2024-05-10"), IsOnsite: false},
	}

	view := GroupByPerson(holidays, locations, nil, users, groups, monthDays(t, 2024, 5))

	// User A has 3 holiday dates and 2 qualifying remote dates; user B has
	// neither and is omitted entirely.
	require.Len(t, view.Groups, 1)
	require.Len(t, view.Groups[0].Employees, 1)

	emp := view.Groups[0].Employees[0]
	assert.Equal(t, "u-a", emp.ID)
	assert.Equal(t, 3, emp.HolidayCount)
	assert.Equal(t, 2, emp.RemoteDaysCount)
	assert.Equal(t, []string{"2024-05-09", "2024-05-10"}, emp.RemoteDates)

	assert.Equal(t, 1, view.TotalEmployeesWithHolidays)
	assert.Equal(t, 1, view.TotalEmployeesWithRemoteWork)
}

func TestGroupByPerson_DuplicateRecordsCountOnce(t *testing.T) {
	t.Parallel()

	users := []user.User{{ID: "u-a", Name: "Alice", GroupID: groupID(1)}}
	groups := []user.Group{{ID: 1, Name: "Engineering"}}

	holidays := []holiday.Holiday{
		{ID: "h-1", UserID: "u-a", Date: mustParse(t, "2024-05-06")},
		{ID: "h-2", UserID: "u-a", Date: mustParse(t, "2024-05-06")},
		{ID: "h-3", UserID: "u-a", Date: mustParse(t, "2024-05-07")},
	}

	view := GroupByPerson(holidays, nil, nil, users, groups, monthDays(t, 2024, 5))

	require.Len(t, view.Groups, 1)
	emp := view.Groups[0].Employees[0]
	assert.Equal(t, []string{"2024-05-06", "2024-05-07"}, emp.HolidayDates)
	assert.Equal(t, 2, emp.HolidayCount)
}

func TestGroupByPerson_RemoteQualificationRules(t *testing.T) {
	t.Parallel()

	users := []user.User{{ID: "u-a", Name: "Alice", GroupID: groupID(1)}}
	groups := []user.Group{{ID: 1, Name: "Engineering"}}

	publicHolidays := map[string]bool{"2024-05-01": true}
	holidays := []holiday.Holiday{
		{ID: "h-1", UserID: "u-a", Date: mustParse(t, "2024-05-06")},
	}
	locations := []worklocation.WorkLocation{
		{UserID: "u-a", Date: mustParse(t, "2024-05-01"), IsOnsite: false}, // public holiday
		{UserID: "u-a", Date: mustParse(t, "2024-05-04"), IsOnsite: false}, // Saturday
		{UserID: "u-a", Date: mustParse(t, "2024-05-06"), IsOnsite: false}, // personal holiday
		{UserID: "u-a", Date: mustParse(t, "2024-05-07"), IsOnsite: true},  // onsite, not remote
		{UserID: "u-a", Date: mustParse(t, "2024-05-08"), IsOnsite: false}, // qualifies
	}

	view := GroupByPerson(holidays, locations, publicHolidays, users, groups, monthDays(t, 2024, 5))

	require.Len(t, view.Groups, 1)
	emp := view.Groups[0].Employees[0]
	assert.Equal(t, []string{"2024-05-08"}, emp.RemoteDates)
	assert.Equal(t, 1, emp.RemoteDaysCount)
}

func TestGroupByPerson_GroupOrderingAndUngroupedLast(t *testing.T) {
	t.Parallel()

	users := []user.User{
		{ID: "u-a", Name: "Alice", GroupID: groupID(2)},
		{ID: "u-b", Name: "Bob", GroupID: groupID(1)},
		{ID: "u-c", Name: "Carol"}, // no group
	}
	groups := []user.Group{
		{ID: 1, Name: "Support"},
		{ID: 2, Name: "Engineering"},
		{ID: 3, Name: "Aardvarks"}, // stays empty, dropped
	}

	holidays := []holiday.Holiday{
		{ID: "h-1", UserID: "u-a", Date: mustParse(t, "2024-05-06")},
		{ID: "h-2", UserID: "u-b", Date: mustParse(t, "2024-05-06")},
		{ID: "h-3", UserID: "u-c", Date: mustParse(t, "2024-05-06")},
	}

	view := GroupByPerson(holidays, nil, nil, users, groups, monthDays(t, 2024, 5))

	require.Len(t, view.Groups, 3)
	assert.Equal(t, "Engineering", view.Groups[0].GroupName)
	assert.Equal(t, "Support", view.Groups[1].GroupName)
	assert.Equal(t, user.UngroupedID, view.Groups[2].GroupID)
	assert.Equal(t, user.UngroupedName, view.Groups[2].GroupName)
}

func TestGroupByPerson_UndeclaredDayIsNotRemote(t *testing.T) {
	t.Parallel()

	users := []user.User{{ID: "u-a", Name: "Alice"}}

	// No location declarations at all: nothing qualifies even though every
	// weekday is "not onsite" in the colloquial sense.
	view := GroupByPerson(nil, nil, nil, users, nil, monthDays(t, 2024, 5))
	assert.Empty(t, view.Groups)
	assert.Equal(t, 0, view.TotalEmployeesWithHolidays)
	assert.Equal(t, 0, view.TotalEmployeesWithRemoteWork)
}
