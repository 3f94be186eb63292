package worklocation

import (
	"context"
	"fmt"
	"time"

	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/worklocation"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/calendar"
	"github.com/worktrack/worktrack-backend-go/internal/service/calendarview"
)

type WorkLocationServiceImpl struct {
	worklocation.WorkLocationRepository
	holiday.HolidayRepository
	holiday.PublicHolidayRepository
}

func NewWorkLocationService(
	workLocationRepository worklocation.WorkLocationRepository,
	holidayRepository holiday.HolidayRepository,
	publicHolidayRepository holiday.PublicHolidayRepository,
) worklocation.WorkLocationService {
	return &WorkLocationServiceImpl{
		WorkLocationRepository:  workLocationRepository,
		HolidayRepository:       holidayRepository,
		PublicHolidayRepository: publicHolidayRepository,
	}
}

// SetLocation implements worklocation.WorkLocationService. The declaration is
// rejected for days no location applies to: weekends, public holidays and
// the user's own holidays. Here a failed fetch blocks the write; unlike the
// display paths, accepting a declaration the rules would reject is worse
// than returning an error.
func (s *WorkLocationServiceImpl) SetLocation(ctx context.Context, req worklocation.SetLocationRequest) (worklocation.LocationResponse, error) {
	date, err := calendar.Parse(req.Date)
	if err != nil {
		return worklocation.LocationResponse{}, holiday.ErrInvalidDate
	}

	r := holiday.DateRange{Start: date, End: date}

	personal, err := s.HolidayRepository.GetByUserRange(ctx, req.UserID, r)
	if err != nil {
		return worklocation.LocationResponse{}, fmt.Errorf("failed to get holidays: %w", err)
	}
	public, err := s.PublicHolidayRepository.GetByRange(ctx, r)
	if err != nil {
		return worklocation.LocationResponse{}, fmt.Errorf("failed to get public holidays: %w", err)
	}

	status := calendarview.ClassifyDay(date, holidaySet(personal), publicHolidaySet(public))
	if status.Restricted {
		return worklocation.LocationResponse{}, worklocation.ErrDayNotActionable
	}

	loc, err := s.WorkLocationRepository.Upsert(ctx, req.UserID, date, req.IsOnsite)
	if err != nil {
		return worklocation.LocationResponse{}, fmt.Errorf("failed to save work location: %w", err)
	}

	return worklocation.LocationResponse{
		Date:     calendar.Format(loc.Date),
		IsOnsite: loc.IsOnsite,
	}, nil
}

// ListMyLocations implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) ListMyLocations(ctx context.Context, userID string, startDate, endDate string) ([]worklocation.LocationResponse, error) {
	r, err := rangeOrCurrentMonth(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records, err := s.WorkLocationRepository.GetByUserRange(ctx, userID, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get work locations: %w", err)
	}

	responses := make([]worklocation.LocationResponse, 0, len(records))
	for _, loc := range records {
		responses = append(responses, worklocation.LocationResponse{
			Date:     calendar.Format(loc.Date),
			IsOnsite: loc.IsOnsite,
		})
	}
	return responses, nil
}

func holidaySet(records []holiday.Holiday) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, h := range records {
		set[calendar.Format(h.Date)] = true
	}
	return set
}

func publicHolidaySet(records []holiday.PublicHoliday) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, ph := range records {
		set[calendar.Format(ph.Date)] = true
	}
	return set
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
