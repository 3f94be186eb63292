package http

import (
	"log/slog"
	"net/http"

	"github.com/worktrack/worktrack-backend-go/internal/domain/calendarview"
	"github.com/worktrack/worktrack-backend-go/internal/domain/stats"
	"github.com/worktrack/worktrack-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	Window(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendarview.CalendarService
	statsService    stats.StatsService
}

func NewCalendarHandler(calendarService calendarview.CalendarService, statsService stats.StatsService) CalendarHandler {
	return &CalendarHandlerImpl{
		calendarService: calendarService,
		statsService:    statsService,
	}
}

// Window implements CalendarHandler. Defaults: current month centered, one
// month before and after.
func (h *CalendarHandlerImpl) Window(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month := yearMonthParams(r)
	spanBefore := queryInt(r, "span_before", 1)
	spanAfter := queryInt(r, "span_after", 1)

	months, err := h.calendarService.BuildWindow(r.Context(), userID, year, month, spanBefore, spanAfter)
	if err != nil {
		slog.Error("Calendar window service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, months)
}

// Today implements CalendarHandler.
func (h *CalendarHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	status, err := h.calendarService.Today(r.Context(), userID)
	if err != nil {
		slog.Error("Calendar today service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// MonthlyStats implements CalendarHandler.
func (h *CalendarHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month := yearMonthParams(r)

	summary, err := h.statsService.GetMonthlyStats(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("Monthly stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
