package timesheet

import "github.com/worktrack/worktrack-backend-go/internal/pkg/validator"

type LogHoursRequest struct {
	UserID string  `json:"-"`
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
	Note   *string `json:"note"`
}

func (r LogHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
	}
	if r.Hours <= 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "Hours must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID    string  `json:"id"`
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Note  *string `json:"note,omitempty"`
}
