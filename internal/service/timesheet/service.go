package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/timesheet"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/calendar"
)

type TimesheetServiceImpl struct {
	timesheet.TimesheetRepository
}

func NewTimesheetService(timesheetRepository timesheet.TimesheetRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{TimesheetRepository: timesheetRepository}
}

// LogHours implements timesheet.TimesheetService. Multiple entries per day
// are allowed; the monthly summary sums them.
func (s *TimesheetServiceImpl) LogHours(ctx context.Context, req timesheet.LogHoursRequest) (timesheet.EntryResponse, error) {
	date, err := calendar.Parse(req.Date)
	if err != nil {
		return timesheet.EntryResponse{}, holiday.ErrInvalidDate
	}

	entry, err := s.TimesheetRepository.Create(ctx, timesheet.Entry{
		UserID: req.UserID,
		Date:   date,
		Hours:  req.Hours,
		Note:   req.Note,
	})
	if err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to create timesheet entry: %w", err)
	}

	return toEntryResponse(entry), nil
}

// ListEntries implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListEntries(ctx context.Context, userID string, startDate, endDate string) ([]timesheet.EntryResponse, error) {
	r, err := rangeOrCurrentMonth(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records, err := s.TimesheetRepository.GetByUserRange(ctx, userID, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get timesheet entries: %w", err)
	}

	responses := make([]timesheet.EntryResponse, 0, len(records))
	for _, e := range records {
		responses = append(responses, toEntryResponse(e))
	}
	return responses, nil
}

// DeleteEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DeleteEntry(ctx context.Context, id string, userID string) error {
	return s.TimesheetRepository.Delete(ctx, id, userID)
}

func toEntryResponse(e timesheet.Entry) timesheet.EntryResponse {
	return timesheet.EntryResponse{
		ID:    e.ID,
		Date:  calendar.Format(e.Date),
		Hours: e.Hours,
		Note:  e.Note,
	}
}

func rangeOrCurrentMonth(startDate, endDate string) (holiday.DateRange, error) {
	if startDate == "" || endDate == "" {
		now := time.Now().UTC()
		first, last := calendar.MonthRange(now.Year(), int(now.Month()))
		return holiday.DateRange{Start: first, End: last}, nil
	}

	start, err := calendar.Parse(startDate)
	if err != nil {
		return holiday.DateRange{}, holiday.ErrInvalidDate
	}
	end, err := calendar.Parse(endDate)
	if err != nil {
		return holiday.DateRange{}, holiday.ErrInvalidDate
	}
	return holiday.DateRange{Start: start, End: end}, nil
}
