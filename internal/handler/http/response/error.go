package response

import (
	"errors"
	"net/http"

	"github.com/worktrack/worktrack-backend-go/internal/domain/auth"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/timesheet"
	"github.com/worktrack/worktrack-backend-go/internal/domain/user"
	"github.com/worktrack/worktrack-backend-go/internal/domain/worklocation"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Holiday interval validation errors; each gets its own message so the
	// client can say exactly why the interval was rejected.
	case errors.Is(err, holiday.ErrInvalidDate),
		errors.Is(err, holiday.ErrWeekendNotAllowed),
		errors.Is(err, holiday.ErrPublicHolidayNotAllowed),
		errors.Is(err, holiday.ErrNoValidDays):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, holiday.ErrNotOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrPublicHolidayNotFound):
		NotFound(w, "Public holiday not found")
	case errors.Is(err, holiday.ErrPublicHolidayExists):
		Conflict(w, err.Error())

	// Work location
	case errors.Is(err, worklocation.ErrDayNotActionable):
		BadRequest(w, err.Error(), nil)

	// Timesheet
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Timesheet entry not found")

	// User directory
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrGroupNotFound):
		NotFound(w, "Group not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
