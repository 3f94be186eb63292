package overview

// DateEntry lists who is off on one calendar day.
type DateEntry struct {
	DisplayDate   string     `json:"display_date"`
	DayOfWeekName string     `json:"day_of_week_name"`
	Employees     []Employee `json:"employees"`
}

type Employee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ByDateView maps canonical dates to the employees off that day. Map
// iteration order is insertion order of the build scan, not necessarily
// chronological; Dates preserves that order so callers can sort if needed.
type ByDateView struct {
	Dates   []string             `json:"dates"`
	Entries map[string]DateEntry `json:"entries"`
}

// EmployeeAggregate is one employee's holiday and remote-day tally for the
// queried month.
type EmployeeAggregate struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	HolidayDates    []string `json:"holiday_dates"`
	HolidayCount    int      `json:"holiday_count"`
	RemoteDates     []string `json:"remote_dates"`
	RemoteDaysCount int      `json:"remote_days_count"`
}

// GroupAggregate buckets qualifying employees into their organizational
// group. Users without a group land in the sentinel "no group" bucket.
type GroupAggregate struct {
	GroupID   int                 `json:"group_id"`
	GroupName string              `json:"group_name"`
	Employees []EmployeeAggregate `json:"employees"`
}

// ByPersonView is the grouped per-employee aggregate plus the two summary
// counters that accompany it.
type ByPersonView struct {
	Groups                       []GroupAggregate `json:"groups"`
	TotalEmployeesWithHolidays   int              `json:"total_employees_with_holidays"`
	TotalEmployeesWithRemoteWork int              `json:"total_employees_with_remote_work"`
}
