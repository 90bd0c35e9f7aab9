package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepsquad/stepsquad/internal/timeutil"
)

func TestFilter(t *testing.T) {
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		period    string
		start     string
		end       string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "defaults to seven days",
			wantStart: "2025-05-04",
			wantEnd:   "2025-05-10",
		},
		{
			name:      "period",
			period:    "yesterday",
			wantStart: "2025-05-09",
			wantEnd:   "2025-05-09",
		},
		{
			name:      "explicit range",
			start:     "2025-04-01",
			end:       "2025-04-15",
			wantStart: "2025-04-01",
			wantEnd:   "2025-04-15",
		},
		{
			name:      "start only runs until today",
			start:     "2025-05-01",
			wantStart: "2025-05-01",
			wantEnd:   "2025-05-10",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := newFilter(tc.period, tc.start, tc.end, now)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStart, timeutil.FormatDay(f.StartTime))
			assert.Equal(t, tc.wantEnd, timeutil.FormatDay(f.EndTime))
		})
	}
}

func TestFilterErrors(t *testing.T) {
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

	_, err := newFilter("fortnight", "", "", now)
	assert.ErrorIs(t, err, errInvalidPeriod)

	_, err = newFilter("", "2025-05-09", "2025-05-01", now)
	assert.ErrorIs(t, err, errInvalidDateRange)
}
