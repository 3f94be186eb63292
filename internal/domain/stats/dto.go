package stats

// MonthlyStats is the required-vs-actual hours summary for one user/month.
// It is derived on demand and never persisted. All hour totals are rounded
// to 2 decimal places at the point of output only.
type MonthlyStats struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalWorkHours      float64 `json:"total_work_hours"`
	HolidayCount        int     `json:"holiday_count"`
	TotalHolidayHours   float64 `json:"total_holiday_hours"`
	PublicHolidaysCount int     `json:"public_holidays_count"`
	// PublicHolidayHours covers only weekday-falling public holidays and is
	// informational: it is not part of TotalCombinedHours.
	PublicHolidayHours   float64 `json:"public_holiday_hours"`
	TotalCombinedHours   float64 `json:"total_combined_hours"`
	RequiredMonthlyHours float64 `json:"required_monthly_hours"`
	RemainingHours       float64 `json:"remaining_hours"`
}
