package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/calendar"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/database"
	"github.com/worktrack/worktrack-backend-go/internal/repository/postgresql"
)

type HolidayServiceImpl struct {
	db *database.DB
	holiday.HolidayRepository
	holiday.PublicHolidayRepository
}

func NewHolidayService(db *database.DB, holidayRepository holiday.HolidayRepository, publicHolidayRepository holiday.PublicHolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		db:                      db,
		HolidayRepository:       holidayRepository,
		PublicHolidayRepository: publicHolidayRepository,
	}
}

// CreateHolidays validates the interval and writes one record per business
// day. The whole multi-date write runs in one transaction: all inserted or
// none. Dates the user already has recorded are skipped, so re-submitting
// the same interval does not duplicate records. The (user_id, date) unique
// constraint in the schema is the authoritative defense against the
// concurrent-overlap race; the existence check is an optimization.
func (s *HolidayServiceImpl) CreateHolidays(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.CreateHolidayResponse, error) {
	r, err := intervalRange(req.StartDate, req.EndDate)
	if err != nil {
		return holiday.CreateHolidayResponse{}, err
	}

	publicHolidays, err := s.PublicHolidayRepository.GetByRange(ctx, r)
	if err != nil {
		return holiday.CreateHolidayResponse{}, fmt.Errorf("failed to get public holidays: %w", err)
	}
	holidaySet := make(map[string]bool, len(publicHolidays))
	for _, ph := range publicHolidays {
		holidaySet[calendar.Format(ph.Date)] = true
	}

	result, err := ValidateInterval(req.StartDate, req.EndDate, holidaySet)
	if err != nil {
		return holiday.CreateHolidayResponse{}, err
	}

	var added []string
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, day := range result.Days {
			date, err := calendar.Parse(day)
			if err != nil {
				return holiday.ErrInvalidDate
			}

			exists, err := s.HolidayRepository.Exists(txCtx, req.UserID, date)
			if err != nil {
				return fmt.Errorf("failed to check existing holiday: %w", err)
			}
			if exists {
				continue
			}

			if _, err := s.HolidayRepository.Create(txCtx, req.UserID, date); err != nil {
				return fmt.Errorf("failed to create holiday record: %w", err)
			}
			added = append(added, day)
		}
		return nil
	})
	if err != nil {
		return holiday.CreateHolidayResponse{}, err
	}

	return holiday.CreateHolidayResponse{
		DaysAdded:              len(added),
		Days:                   added,
		WeekendsExcluded:       result.WeekendsExcluded,
		PublicHolidaysExcluded: result.PublicHolidaysExcluded,
	}, nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string, requesterID string, isAdmin bool) error {
	record, err := s.HolidayRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if record.UserID != requesterID && !isAdmin {
		return holiday.ErrNotOwner
	}

	return s.HolidayRepository.Delete(ctx, id)
}

// ListMyHolidays implements holiday.HolidayService. An empty range defaults
// to the current month.
func (s *HolidayServiceImpl) ListMyHolidays(ctx context.Context, userID string, startDate, endDate string) ([]holiday.HolidayResponse, error) {
	r, err := parseRangeOrCurrentMonth(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records, err := s.HolidayRepository.GetByUserRange(ctx, userID, r)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(records))
	for _, h := range records {
		responses = append(responses, holiday.HolidayResponse{
			ID:   h.ID,
			Date: calendar.Format(h.Date),
		})
	}
	return responses, nil
}

// CreatePublicHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreatePublicHoliday(ctx context.Context, req holiday.CreatePublicHolidayRequest) (holiday.PublicHolidayResponse, error) {
	date, err := calendar.Parse(req.Date)
	if err != nil {
		return holiday.PublicHolidayResponse{}, holiday.ErrInvalidDate
	}

	created, err := s.PublicHolidayRepository.Create(ctx, date, req.Name)
	if err != nil {
		return holiday.PublicHolidayResponse{}, err
	}

	return holiday.PublicHolidayResponse{
		ID:   created.ID,
		Date: calendar.Format(created.Date),
		Name: created.Name,
	}, nil
}

// ListPublicHolidays implements holiday.HolidayService. A zero month lists
// the whole year.
func (s *HolidayServiceImpl) ListPublicHolidays(ctx context.Context, year, month int) ([]holiday.PublicHolidayResponse, error) {
	var records []holiday.PublicHoliday
	var err error

	if month == 0 {
		start, _ := calendar.MonthRange(year, 1)
		_, end := calendar.MonthRange(year, 12)
		records, err = s.PublicHolidayRepository.GetByRange(ctx, holiday.DateRange{Start: start, End: end})
	} else {
		records, err = s.PublicHolidayRepository.GetByMonth(ctx, calendar.ClampYear(year), calendar.ClampMonth(month))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get public holidays: %w", err)
	}

	responses := make([]holiday.PublicHolidayResponse, 0, len(records))
	for _, ph := range records {
		responses = append(responses, holiday.PublicHolidayResponse{
			ID:   ph.ID,
			Date: calendar.Format(ph.Date),
			Name: ph.Name,
		})
	}
	return responses, nil
}

// DeletePublicHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeletePublicHoliday(ctx context.Context, id string) error {
	return s.PublicHolidayRepository.Delete(ctx, id)
}

func parseRangeOrCurrentMonth(startDate, endDate string) (holiday.DateRange, error) {
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
