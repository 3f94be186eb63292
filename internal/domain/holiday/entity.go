package holiday

import "time"

// Holiday is one personal holiday record: one row per user per day off.
// Records are created by the validated "add holiday" operation (one per
// generated business day in the requested interval) and removed by an
// explicit delete restricted to the owner or an admin.
type Holiday struct {
	ID     string
	UserID string
	Date   time.Time

	CreatedAt time.Time
}

// PublicHoliday is an organization-wide non-working day from the maintained
// holiday directory, distinct from a personal holiday.
type PublicHoliday struct {
	ID   string
	Date time.Time
	Name string

	CreatedAt time.Time
	UpdatedAt time.Time
}
