package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worktrack/worktrack-backend-go/internal/domain/worklocation"
	"github.com/worktrack/worktrack-backend-go/internal/handler/http/response"
)

type WorkLocationHandler interface {
	Set(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type WorkLocationHandlerImpl struct {
	workLocationService worklocation.WorkLocationService
}

func NewWorkLocationHandler(workLocationService worklocation.WorkLocationService) WorkLocationHandler {
	return &WorkLocationHandlerImpl{workLocationService: workLocationService}
}

// Set implements WorkLocationHandler.
func (h *WorkLocationHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var setReq worklocation.SetLocationRequest

	if err := json.NewDecoder(r.Body).Decode(&setReq); err != nil {
		slog.Error("Set work location decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := setReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	setReq.UserID = userID

	location, err := h.workLocationService.SetLocation(r.Context(), setReq)
	if err != nil {
		slog.Error("Set work location service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work location saved successfully", location)
}

// ListMine implements WorkLocationHandler.
func (h *WorkLocationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	locations, err := h.workLocationService.ListMyLocations(r.Context(), userID, startDate, endDate)
	if err != nil {
		slog.Error("List work locations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, locations)
}
