package holiday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack/worktrack-backend-go/internal/domain/holiday"
)

func TestValidateInterval_MissingStartDate(t *testing.T) {
	t.Parallel()

	_, err := ValidateInterval("", "2024-05-10", nil)
	assert.ErrorIs(t, err, holiday.ErrInvalidDate)
}

func TestValidateInterval_UnparseableStartDate(t *testing.T) {
	t.Parallel()

	_, err := ValidateInterval("05/10/2024", "", nil)
	assert.ErrorIs(t, err, holiday.ErrInvalidDate)
}

func TestValidateInterval_SaturdayStartAlwaysRejected(t *testing.T) {
	t.Parallel()

	// 2024-05-04 is a Saturday. The start-date check fires before any
	// day generation, regardless of the end date.
	for _, end := range []string{"", "2024-05-04", "2024-05-06", "2024-05-31"} {
		_, err := ValidateInterval("2024-05-04", end, nil)
		assert.ErrorIs(t, err, holiday.ErrWeekendNotAllowed, "end=%s", end)
	}
}

func TestValidateInterval_PublicHolidayStartRejected(t *testing.T) {
	t.Parallel()

	// 2024-05-01 is a Wednesday and a public holiday.
	holidays := map[string]bool{"2024-05-01": true}
	_, err := ValidateInterval("2024-05-01", "2024-05-01", holidays)
	assert.ErrorIs(t, err, holiday.ErrPublicHolidayNotAllowed)
}

func TestValidateInterval_NoValidDays(t *testing.T) {
	t.Parallel()

	// An inverted interval generates no business days at all. The start
	// date itself passes the weekend and holiday checks, so this is the
	// degenerate shape that reaches rule 4.
	_, err := ValidateInterval("2024-05-10", "2024-05-06", nil)
	assert.ErrorIs(t, err, holiday.ErrNoValidDays)
}

func TestValidateInterval_SingleBusinessDay(t *testing.T) {
	t.Parallel()

	result, err := ValidateInterval("2024-05-06", "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-06"}, result.Days)
	assert.False(t, result.WeekendsExcluded)
	assert.False(t, result.PublicHolidaysExcluded)
	assert.False(t, result.DaysExcluded)
}

func TestValidateInterval_ExclusionFlags(t *testing.T) {
	t.Parallel()

	// Wednesday 2024-05-01 is skipped by rule 3 if it is a holiday, so
	// start on Tuesday 2024-04-30 and span the weekend plus a mid-week
	// public holiday.
	holidays := map[string]bool{"2024-05-01": true}
	result, err := ValidateInterval("2024-04-30", "2024-05-06", holidays)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-04-30", "2024-05-02", "2024-05-03", "2024-05-06"}, result.Days)
	assert.True(t, result.WeekendsExcluded)
	assert.True(t, result.PublicHolidaysExcluded)
	assert.True(t, result.DaysExcluded)
}

func TestValidateInterval_WeekendOnlyTail(t *testing.T) {
	t.Parallel()

	// Friday through Sunday: Friday survives, weekend excluded, no
	// public holidays involved.
	result, err := ValidateInterval("2024-05-03", "2024-05-05", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-03"}, result.Days)
	assert.True(t, result.WeekendsExcluded)
	assert.False(t, result.PublicHolidaysExcluded)
	assert.True(t, result.DaysExcluded)
}
