package overview

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/overview"
	"github.com/worktrack/worktrack-backend-go/internal/domain/user"
	"github.com/worktrack/worktrack-backend-go/internal/domain/worklocation"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/calendar"
)

type OverviewServiceImpl struct {
	holiday.HolidayRepository
	holiday.PublicHolidayRepository
	worklocation.WorkLocationRepository
	user.UserRepository
	user.GroupRepository
}

func NewOverviewService(
	holidayRepository holiday.HolidayRepository,
	publicHolidayRepository holiday.PublicHolidayRepository,
	workLocationRepository worklocation.WorkLocationRepository,
	userRepository user.UserRepository,
	groupRepository user.GroupRepository,
) overview.OverviewService {
	return &OverviewServiceImpl{
		HolidayRepository:       holidayRepository,
		PublicHolidayRepository: publicHolidayRepository,
		WorkLocationRepository:  workLocationRepository,
		UserRepository:          userRepository,
		GroupRepository:         groupRepository,
	}
}

// monthData is everything both grouped views need, fetched in one constant
// number of queries per request regardless of user or record count.
type monthData struct {
	holidays       []holiday.Holiday
	locations      []worklocation.WorkLocation
	publicHolidays map[string]bool
	users          []user.User
	groups         []user.Group
	allDays        []time.Time
}

// fetchMonth batch-fetches the month's records and the directory. Each
// failed fetch is absorbed into an empty slice: these feed display views
// where partial data beats a hard failure.
func (s *OverviewServiceImpl) fetchMonth(ctx context.Context, year, month int) monthData {
	first, last := calendar.MonthRange(year, month)
	r := holiday.DateRange{Start: first, End: last}

	data := monthData{publicHolidays: make(map[string]bool)}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		data.allDays = append(data.allDays, d)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.HolidayRepository.GetAllInRange(gctx, r)
		if err != nil {
			slog.Error("overview: holiday fetch failed", "error", err)
			return nil
		}
		data.holidays = records
		return nil
	})

	g.Go(func() error {
		records, err := s.WorkLocationRepository.GetAllInRange(gctx, r)
		if err != nil {
			slog.Error("overview: work location fetch failed", "error", err)
			return nil
		}
		data.locations = records
		return nil
	})

	g.Go(func() error {
		records, err := s.PublicHolidayRepository.GetByRange(gctx, r)
		if err != nil {
			slog.Error("overview: public holiday fetch failed", "error", err)
			return nil
		}
		for _, ph := range records {
			data.publicHolidays[calendar.Format(ph.Date)] = true
		}
		return nil
	})

	g.Go(func() error {
		users, err := s.UserRepository.List(gctx)
		if err != nil {
			slog.Error("overview: user directory fetch failed", "error", err)
			return nil
		}
		data.users = users
		return nil
	})

	g.Go(func() error {
		groups, err := s.GroupRepository.List(gctx)
		if err != nil {
			slog.Error("overview: group directory fetch failed", "error", err)
			return nil
		}
		data.groups = groups
		return nil
	})

	_ = g.Wait()

	return data
}

// ByDate implements overview.OverviewService.
func (s *OverviewServiceImpl) ByDate(ctx context.Context, year, month int) (overview.ByDateView, error) {
	data := s.fetchMonth(ctx, calendar.ClampYear(year), calendar.ClampMonth(month))
	return GroupByDate(data.holidays, data.users), nil
}

// ByPerson implements overview.OverviewService.
func (s *OverviewServiceImpl) ByPerson(ctx context.Context, year, month int) (overview.ByPersonView, error) {
	data := s.fetchMonth(ctx, calendar.ClampYear(year), calendar.ClampMonth(month))
	return GroupByPerson(data.holidays, data.locations, data.publicHolidays, data.users, data.groups, data.allDays), nil
}
