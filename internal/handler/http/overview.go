package http

import (
	"log/slog"
	"net/http"

	"github.com/worktrack/worktrack-backend-go/internal/domain/overview"
	"github.com/worktrack/worktrack-backend-go/internal/handler/http/response"
)

type OverviewHandler interface {
	ByDate(w http.ResponseWriter, r *http.Request)
	ByPerson(w http.ResponseWriter, r *http.Request)
}

type OverviewHandlerImpl struct {
	overviewService overview.OverviewService
}

func NewOverviewHandler(overviewService overview.OverviewService) OverviewHandler {
	return &OverviewHandlerImpl{overviewService: overviewService}
}

// ByDate implements OverviewHandler.
func (h *OverviewHandlerImpl) ByDate(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonthParams(r)

	view, err := h.overviewService.ByDate(r.Context(), year, month)
	if err != nil {
		slog.Error("Overview by date service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// ByPerson implements OverviewHandler.
func (h *OverviewHandlerImpl) ByPerson(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonthParams(r)

	view, err := h.overviewService.ByPerson(r.Context(), year, month)
	if err != nil {
		slog.Error("Overview by person service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}
