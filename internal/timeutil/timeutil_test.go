package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeFor(t *testing.T) {
	now := time.Date(2025, 5, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		period    Period
		wantStart string
		wantEnd   string
	}{
		{PeriodToday, "2025-05-10", "2025-05-10"},
		{PeriodYesterday, "2025-05-09", "2025-05-09"},
		{Period7Days, "2025-05-04", "2025-05-10"},
		{Period30Days, "2025-04-11", "2025-05-10"},
	}

	for _, tc := range tests {
		t.Run(string(tc.period), func(t *testing.T) {
			start, end := RangeFor(tc.period, now)

			assert.Equal(t, tc.wantStart, FormatDay(start))
			assert.Equal(t, tc.wantEnd, FormatDay(end))
			assert.Equal(t, 23, end.Hour())
		})
	}

	start, _ := RangeFor(PeriodAllTime, now)
	assert.True(t, start.IsZero())
}

func TestFromStrAbsolute(t *testing.T) {
	now := time.Date(2025, 5, 10, 14, 30, 0, 0, time.UTC)

	got, err := FromStr("2025-03-15", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 4, 29, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 2, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 4, DaysBetween(start, end))
	assert.Equal(t, 1, DaysBetween(end, end))
}
