package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var a Activity

	err := json.Unmarshal(
		[]byte(`{"id":7,"date":"2025-05-01","quantity":120,"goal":8000}`),
		&a,
	)
	require.NoError(t, err)

	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, "2025-05-01", a.Date.String())
	assert.Equal(t, 8000, a.Goal)

	b, err := json.Marshal(ActivityUpdate{ID: 7, Date: a.Date, Quantity: 5050})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":7,"date":"2025-05-01","quantity":5050}`, string(b))
}

func TestDateAcceptsTimestamps(t *testing.T) {
	var d Date

	require.NoError(t, json.Unmarshal([]byte(`"2025-05-01T10:30:00Z"`), &d))

	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, time.May, d.Month())
}

func TestDateKeepsServerTimestamp(t *testing.T) {
	var a Activity

	err := json.Unmarshal(
		[]byte(`{"id":7,"date":"2025-05-01T22:30:00-04:00","quantity":120}`),
		&a,
	)
	require.NoError(t, err)

	assert.Equal(t, "2025-05-01", a.Date.String())

	b, err := json.Marshal(ActivityUpdate{ID: 7, Date: a.Date, Quantity: 5050})
	require.NoError(t, err)

	assert.JSONEq(
		t,
		`{"id":7,"date":"2025-05-01T22:30:00-04:00","quantity":5050}`,
		string(b),
	)
}

func TestNewDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	assert.Equal(t, `"2025-05-01"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)

	assert.Equal(t, "null", string(b))
}

func TestDayGoalReached(t *testing.T) {
	tests := []struct {
		name string
		day  Day
		want bool
	}{
		{"below goal", Day{Steps: 9999, Goal: 10000}, false},
		{"at goal", Day{Steps: 10000, Goal: 10000}, true},
		{"no goal", Day{Steps: 500}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.day.GoalReached())
		})
	}
}
