package holiday

import (
	"time"

	"github.com/worktrack/worktrack-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	UserID    string `json:"-"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidationResult is the outcome of a successful interval validation: the
// business days that will become holiday records, plus flags describing what
// the original interval contained, so the caller can compose a summary like
// "3 days added, weekends and public holidays excluded".
type ValidationResult struct {
	Days                   []string `json:"days"`
	WeekendsExcluded       bool     `json:"weekends_excluded"`
	PublicHolidaysExcluded bool     `json:"public_holidays_excluded"`
	DaysExcluded           bool     `json:"days_excluded"`
}

type CreateHolidayResponse struct {
	DaysAdded              int      `json:"days_added"`
	Days                   []string `json:"days"`
	WeekendsExcluded       bool     `json:"weekends_excluded"`
	PublicHolidaysExcluded bool     `json:"public_holidays_excluded"`
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

type PublicHolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

type CreatePublicHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r CreatePublicHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DateRange is an inclusive start/end pair used by the range read operations.
type DateRange struct {
	Start time.Time
	End   time.Time
}
