package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOfWeek(t *testing.T) {
	t.Parallel()

	// 2024-05-05 is a Sunday, 2024-05-04 a Saturday, 2024-05-06 a Monday.
	sunday := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DayOfWeek(sunday))
	assert.Equal(t, 6, DayOfWeek(saturday))
	assert.Equal(t, 1, DayOfWeek(monday))

	assert.True(t, IsWeekend(sunday))
	assert.True(t, IsWeekend(saturday))
	assert.False(t, IsWeekend(monday))
}

func TestFormatParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for year := MinYear; year <= MaxYear; year++ {
		d := time.Date(year, time.February, 28, 0, 0, 0, 0, time.UTC)
		parsed, err := Parse(Format(d))
		require.NoError(t, err)
		assert.True(t, parsed.Equal(d))
	}
}

func TestMonthRange(t *testing.T) {
	t.Parallel()

	first, last := MonthRange(2024, 2)
	assert.Equal(t, "2024-02-01", Format(first))
	assert.Equal(t, "2024-02-29", Format(last)) // leap year

	first, last = MonthRange(2023, 2)
	assert.Equal(t, "2023-02-01", Format(first))
	assert.Equal(t, "2023-02-28", Format(last))

	first, last = MonthRange(2024, 12)
	assert.Equal(t, "2024-12-01", Format(first))
	assert.Equal(t, "2024-12-31", Format(last))
}

func TestMonthRange_ClampsOutOfRangeInput(t *testing.T) {
	t.Parallel()

	first, _ := MonthRange(1999, 0)
	assert.Equal(t, "2020-01-01", Format(first))

	_, last := MonthRange(2999, 13)
	assert.Equal(t, "2030-12-31", Format(last))
}

func TestWeekdayCount(t *testing.T) {
	t.Parallel()

	// February 2024 starts on a Thursday and has 29 days: 21 weekdays.
	assert.Equal(t, 21, WeekdayCount(2024, 2))

	// May 2024: 31 days, 23 weekdays.
	assert.Equal(t, 23, WeekdayCount(2024, 5))
}

func TestShiftMonth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		year, month, offset int
		wantYear, wantMonth int
	}{
		{2024, 12, 1, 2025, 1},
		{2024, 1, -1, 2023, 12},
		{2024, 11, 2, 2025, 1},
		{2024, 2, -2, 2023, 12},
		{2024, 6, 0, 2024, 6},
		{2024, 1, -13, 2022, 12},
	}
	for _, c := range cases {
		y, m := ShiftMonth(c.year, c.month, c.offset)
		assert.Equal(t, c.wantYear, y)
		assert.Equal(t, c.wantMonth, m)
	}
}

func TestMonthName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "December", MonthName(12))
	assert.Equal(t, "December", MonthName(99))
}
