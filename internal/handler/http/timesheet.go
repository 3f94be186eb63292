package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worktrack/worktrack-backend-go/internal/domain/timesheet"
	"github.com/worktrack/worktrack-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	LogHours(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// LogHours implements TimesheetHandler.
func (h *TimesheetHandlerImpl) LogHours(w http.ResponseWriter, r *http.Request) {
	var logReq timesheet.LogHoursRequest

	if err := json.NewDecoder(r.Body).Decode(&logReq); err != nil {
		slog.Error("Log hours decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := logReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	logReq.UserID = userID

	entry, err := h.timesheetService.LogHours(r.Context(), logReq)
	if err != nil {
		slog.Error("Log hours service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Hours logged successfully", entry)
}

// ListMine implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	entries, err := h.timesheetService.ListEntries(r.Context(), userID, startDate, endDate)
	if err != nil {
		slog.Error("List timesheet entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Delete implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.timesheetService.DeleteEntry(r.Context(), id, userID); err != nil {
		slog.Error("Delete timesheet entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet entry deleted successfully", nil)
}
