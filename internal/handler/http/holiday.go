package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreatePublic(w http.ResponseWriter, r *http.Request)
	ListPublic(w http.ResponseWriter, r *http.Request)
	DeletePublic(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler. Accepts a date interval and records one
// holiday per business day in it.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	createReq.UserID = userID

	result, err := h.holidayService.CreateHolidays(r.Context(), createReq)
	if err != nil {
		slog.Error("Create holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holidays created successfully", result)
}

// ListMine implements HolidayHandler.
func (h *HolidayHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	holidays, err := h.holidayService.ListMyHolidays(r.Context(), userID, startDate, endDate)
	if err != nil {
		slog.Error("List holidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Delete implements HolidayHandler. Admins can delete anyone's holiday;
// everyone else only their own.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.holidayService.DeleteHoliday(r.Context(), id, userID, isAdmin(r)); err != nil {
		slog.Error("Delete holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

// CreatePublic implements HolidayHandler. Admin only (enforced by routing).
func (h *HolidayHandlerImpl) CreatePublic(w http.ResponseWriter, r *http.Request) {
	var createReq holiday.CreatePublicHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create public holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.holidayService.CreatePublicHoliday(r.Context(), createReq)
	if err != nil {
		slog.Error("Create public holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday created successfully", created)
}

// ListPublic implements HolidayHandler. month=0 lists the whole year.
func (h *HolidayHandlerImpl) ListPublic(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", time.Now().UTC().Year())
	month := queryInt(r, "month", 0)

	holidays, err := h.holidayService.ListPublicHolidays(r.Context(), year, month)
	if err != nil {
		slog.Error("List public holidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// DeletePublic implements HolidayHandler. Admin only (enforced by routing).
func (h *HolidayHandlerImpl) DeletePublic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.holidayService.DeletePublicHoliday(r.Context(), id); err != nil {
		slog.Error("Delete public holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday deleted successfully", nil)
}
