package worklocation

import "github.com/worktrack/worktrack-backend-go/internal/pkg/validator"

type SetLocationRequest struct {
	UserID   string `json:"-"`
	Date     string `json:"date"`
	IsOnsite bool   `json:"is_onsite"`
}

func (r SetLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LocationResponse struct {
	Date     string `json:"date"`
	IsOnsite bool   `json:"is_onsite"`
}
