package calendarview

// DayCell is the per-day classification for one user, computed on demand and
// never stored. IsOnsite is nil when the user made no declaration for the
// day, which is distinct from an explicit remote (false) declaration.
type DayCell struct {
	Date            string `json:"date"`
	IsWeekend       bool   `json:"is_weekend"`
	IsHoliday       bool   `json:"is_holiday"`
	IsPublicHoliday bool   `json:"is_public_holiday"`
	IsOnsite        *bool  `json:"is_onsite"`
}

// MonthCalendar is one month of day cells inside a rolling window.
type MonthCalendar struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	MonthName string    `json:"month_name"`
	Days      []DayCell `json:"days"`
}

// TodayStatus says whether today is actionable for a location declaration
// and, when it is not, the single reason why. Reason priority: public
// holiday > personal holiday > weekend.
type TodayStatus struct {
	Date       string `json:"date"`
	Restricted bool   `json:"restricted"`
	Reason     string `json:"reason,omitempty"`
}
