package calendarview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
	"github.com/worktrack/worktrack-backend-go/internal/domain/worklocation"
	"github.com/worktrack/worktrack-backend-go/internal/pkg/calendar"
)

type fakeHolidayRepo struct {
	records   []holiday.Holiday
	err       error
	lastRange holiday.DateRange
}

func (f *fakeHolidayRepo) Create(ctx context.Context, userID string, date time.Time) (holiday.Holiday, error) {
	return holiday.Holiday{}, nil
}

func (f *fakeHolidayRepo) Exists(ctx context.Context, userID string, date time.Time) (bool, error) {
	return false, nil
}

func (f *fakeHolidayRepo) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) GetByUserRange(ctx context.Context, userID string, r holiday.DateRange) ([]holiday.Holiday, error) {
	f.lastRange = r
	return f.records, f.err
}

func (f *fakeHolidayRepo) GetAllInRange(ctx context.Context, r holiday.DateRange) ([]holiday.Holiday, error) {
	return f.records, f.err
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error { return nil }

type fakePublicHolidayRepo struct {
	records []holiday.PublicHoliday
	err     error
}

func (f *fakePublicHolidayRepo) Create(ctx context.Context, date time.Time, name string) (holiday.PublicHoliday, error) {
	return holiday.PublicHoliday{}, nil
}

func (f *fakePublicHolidayRepo) GetByRange(ctx context.Context, r holiday.DateRange) ([]holiday.PublicHoliday, error) {
	return f.records, f.err
}

func (f *fakePublicHolidayRepo) GetByMonth(ctx context.Context, year, month int) ([]holiday.PublicHoliday, error) {
	return f.records, f.err
}

func (f *fakePublicHolidayRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeLocationRepo struct {
	records []worklocation.WorkLocation
	err     error
}

func (f *fakeLocationRepo) Upsert(ctx context.Context, userID string, date time.Time, isOnsite bool) (worklocation.WorkLocation, error) {
	return worklocation.WorkLocation{}, nil
}

func (f *fakeLocationRepo) GetByUserRange(ctx context.Context, userID string, r holiday.DateRange) ([]worklocation.WorkLocation, error) {
	return f.records, f.err
}

func (f *fakeLocationRepo) GetAllInRange(ctx context.Context, r holiday.DateRange) ([]worklocation.WorkLocation, error) {
	return f.records, f.err
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.Parse(s)
	require.NoError(t, err)
	return d
}

func newTestService(hr *fakeHolidayRepo, phr *fakePublicHolidayRepo, lr *fakeLocationRepo) *CalendarServiceImpl {
	return &CalendarServiceImpl{
		HolidayRepository:       hr,
		PublicHolidayRepository: phr,
		WorkLocationRepository:  lr,
		now:                     time.Now,
	}
}

func TestBuildWindow_WrapsYearBoundary(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeHolidayRepo{}, &fakePublicHolidayRepo{}, &fakeLocationRepo{})

	months, err := svc.BuildWindow(context.Background(), "u-1", 2024, 12, 1, 2)
	require.NoError(t, err)
	require.Len(t, months, 4)

	assert.Equal(t, 2024, months[0].Year)
	assert.Equal(t, 11, months[0].Month)
	assert.Equal(t, "November", months[0].MonthName)

	assert.Equal(t, 2024, months[1].Year)
	assert.Equal(t, 12, months[1].Month)

	assert.Equal(t, 2025, months[2].Year)
	assert.Equal(t, 1, months[2].Month)
	assert.Equal(t, "January", months[2].MonthName)

	assert.Equal(t, 2025, months[3].Year)
	assert.Equal(t, 2, months[3].Month)

	assert.Len(t, months[1].Days, 31) // December
	assert.Len(t, months[3].Days, 28) // February 2025
}

func TestBuildWindow_TruncatesAtSupportedRange(t *testing.T) {
	t.Parallel()

	hr := &fakeHolidayRepo{}
	phr := &fakePublicHolidayRepo{records: []holiday.PublicHoliday{
		{ID: "ph-1", Date: mustParse(t, "2020-01-01"), Name: "New Year"},
	}}

	svc := newTestService(hr, phr, &fakeLocationRepo{})
	months, err := svc.BuildWindow(context.Background(), "u-1", 2020, 1, 1, 1)
	require.NoError(t, err)

	// December 2019 has no valid days, so the window holds two months and
	// every label matches its days.
	require.Len(t, months, 2)
	assert.Equal(t, 2020, months[0].Year)
	assert.Equal(t, 1, months[0].Month)
	assert.Equal(t, "2020-01-01", months[0].Days[0].Date)
	assert.Equal(t, 2020, months[1].Year)
	assert.Equal(t, 2, months[1].Month)

	// The fetch range stays ordered, so the center month keeps its
	// annotations.
	assert.Equal(t, "2020-01-01", calendar.Format(hr.lastRange.Start))
	assert.Equal(t, "2020-02-29", calendar.Format(hr.lastRange.End))
	assert.True(t, months[0].Days[0].IsPublicHoliday)

	months, err = svc.BuildWindow(context.Background(), "u-1", 2030, 12, 1, 2)
	require.NoError(t, err)

	require.Len(t, months, 2)
	assert.Equal(t, 2030, months[0].Year)
	assert.Equal(t, 11, months[0].Month)
	assert.Equal(t, 2030, months[1].Year)
	assert.Equal(t, 12, months[1].Month)
	assert.Equal(t, "2030-12-31", calendar.Format(hr.lastRange.End))
}

func TestBuildWindow_DayCellFlags(t *testing.T) {
	t.Parallel()

	hr := &fakeHolidayRepo{records: []holiday.Holiday{
		{ID: "h-1", UserID: "u-1", Date: mustParse(t, "2024-05-06")},
	}}
	phr := &fakePublicHolidayRepo{records: []holiday.PublicHoliday{
		{ID: "ph-1", Date: mustParse(t, "2024-05-01"), Name: "Labour Day"},
	}}
	lr := &fakeLocationRepo{records: []worklocation.WorkLocation{
		{UserID: "u-1", Date: mustParse(t, "2024-05-02"), IsOnsite: true},
		{UserID: "u-1", Date: mustParse(t, "2024-05-03"), IsOnsite: false},
	}}

	svc := newTestService(hr, phr, lr)
	months, err := svc.BuildWindow(context.Background(), "u-1", 2024, 5, 0, 0)
	require.NoError(t, err)
	require.Len(t, months, 1)

	cells := make(map[string]struct {
		weekend, hol, pub bool
		onsite            *bool
	})
	for _, cell := range months[0].Days {
		cells[cell.Date] = struct {
			weekend, hol, pub bool
			onsite            *bool
		}{cell.IsWeekend, cell.IsHoliday, cell.IsPublicHoliday, cell.IsOnsite}
	}

	assert.True(t, cells["2024-05-01"].pub)
	assert.True(t, cells["2024-05-06"].hol)
	assert.True(t, cells["2024-05-04"].weekend)

	require.NotNil(t, cells["2024-05-02"].onsite)
	assert.True(t, *cells["2024-05-02"].onsite)

	require.NotNil(t, cells["2024-05-03"].onsite)
	assert.False(t, *cells["2024-05-03"].onsite)

	// No declaration is distinct from declared remote.
	assert.Nil(t, cells["2024-05-07"].onsite)
}

func TestBuildWindow_FetchFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	hr := &fakeHolidayRepo{err: errors.New("connection refused")}
	phr := &fakePublicHolidayRepo{err: errors.New("connection refused")}
	lr := &fakeLocationRepo{err: errors.New("connection refused")}

	svc := newTestService(hr, phr, lr)
	months, err := svc.BuildWindow(context.Background(), "u-1", 2024, 5, 0, 0)

	require.NoError(t, err)
	require.Len(t, months, 1)
	for _, cell := range months[0].Days {
		assert.False(t, cell.IsHoliday)
		assert.False(t, cell.IsPublicHoliday)
		assert.Nil(t, cell.IsOnsite)
	}
}

func TestClassifyDay_ReasonPriority(t *testing.T) {
	t.Parallel()

	saturday := mustParse(t, "2024-05-04")
	monday := mustParse(t, "2024-05-06")
	key := calendar.Format(saturday)

	// Public holiday wins over personal holiday and weekend.
	status := ClassifyDay(saturday, map[string]bool{key: true}, map[string]bool{key: true})
	assert.True(t, status.Restricted)
	assert.Equal(t, "public holiday", status.Reason)

	// Personal holiday wins over weekend.
	status = ClassifyDay(saturday, map[string]bool{key: true}, nil)
	assert.True(t, status.Restricted)
	assert.Equal(t, "personal holiday", status.Reason)

	status = ClassifyDay(saturday, nil, nil)
	assert.True(t, status.Restricted)
	assert.Equal(t, "weekend", status.Reason)

	status = ClassifyDay(monday, nil, nil)
	assert.False(t, status.Restricted)
	assert.Empty(t, status.Reason)
}

func TestToday_UsesInjectedClock(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeHolidayRepo{}, &fakePublicHolidayRepo{}, &fakeLocationRepo{})
	svc.now = func() time.Time { return mustParse(t, "2024-05-05") } // Sunday

	status, err := svc.Today(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-05", status.Date)
	assert.True(t, status.Restricted)
	assert.Equal(t, "weekend", status.Reason)
}
