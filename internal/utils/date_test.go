package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOfWeek(t *testing.T) {
	loc := time.UTC
	monday := time.Date(2024, 7, 15, 0, 0, 0, 0, loc)

	cases := map[string]time.Time{
		"monday itself":      time.Date(2024, 7, 15, 9, 30, 0, 0, loc),
		"wednesday":          time.Date(2024, 7, 17, 23, 59, 0, 0, loc),
		"saturday":           time.Date(2024, 7, 20, 12, 0, 0, 0, loc),
		"sunday goes back":   time.Date(2024, 7, 21, 8, 0, 0, 0, loc),
		"friday at midnight": time.Date(2024, 7, 19, 0, 0, 0, 0, loc),
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, monday.Equal(MondayOfWeek(in)), "got %s", MondayOfWeek(in))
		})
	}
}

func TestMondayOfWeek_CrossesMonthAndYear(t *testing.T) {
	got := MondayOfWeek(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), got)
}

func TestWeekKey(t *testing.T) {
	assert.Equal(t, "20240715", WeekKey(time.Date(2024, 7, 21, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, "20240722", WeekKey(time.Date(2024, 7, 22, 8, 0, 0, 0, time.UTC)))
}

func TestAddMonths(t *testing.T) {
	assert.Equal(t,
		time.Date(2024, 2, 29, 10, 15, 0, 0, time.UTC),
		AddMonths(time.Date(2024, 1, 31, 10, 15, 0, 0, time.UTC), 1))
	assert.Equal(t,
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		AddMonths(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), 8))
	assert.Equal(t,
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		AddMonths(time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC), -2))
}

func TestParseDate(t *testing.T) {
	withZone, err := ParseDate("2024-07-15T11:10:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, 11, withZone.Hour())

	local, err := ParseDate("2024-07-15T11:10:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 15, 11, 10, 0, 0, local.Location()), local)

	dateOnly, err := ParseDate("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, 0, dateOnly.Hour())

	_, err = ParseDate("15/07/2024")
	assert.Error(t, err)
}
