package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepsquad/stepsquad/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "stepsquad.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestItemRoundTrip(t *testing.T) {
	c := newTestClient(t)

	_, ok, err := c.GetItem("@StepSquad:currentStepCount")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetItem("@StepSquad:currentStepCount", "5050"))

	v, ok, err := c.GetItem("@StepSquad:currentStepCount")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "5050", v)

	require.NoError(t, c.RemoveItem("@StepSquad:currentStepCount"))

	_, ok, err = c.GetItem("@StepSquad:currentStepCount")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItemsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepsquad.db")

	c, err := NewClient(path)
	require.NoError(t, err)
	require.NoError(t, c.SetItem("k", "12"))
	require.NoError(t, c.Close())

	c, err = NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	v, ok, err := c.GetItem("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12", v)
}

func TestSecondOpenFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepsquad.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	assert.True(t, IsAlreadyRunning(err))
}

func TestDays(t *testing.T) {
	c := newTestClient(t)

	rows := []*models.Day{
		{Date: day(2025, 4, 29), Steps: 8000, Goal: 10000},
		{Date: day(2025, 4, 30), Steps: 12000, Goal: 10000},
		{Date: day(2025, 5, 1), Steps: 3000, Goal: 10000},
		{Date: day(2025, 5, 10), Steps: 10, Goal: 10000},
	}

	for _, r := range rows {
		require.NoError(t, c.UpdateDay(r))
	}

	got, err := c.GetDays(day(2025, 4, 30), day(2025, 5, 1).Add(23*time.Hour))
	require.NoError(t, err)

	if diff := cmp.Diff(rows[1:3], got, cmpDays); diff != "" {
		t.Fatalf("days mismatch (-want +got):\n%s", diff)
	}

	all, err := c.GetDays(time.Time{}, day(2025, 12, 31))
	require.NoError(t, err)
	assert.Len(t, all, 4)

	one, err := c.GetDay(day(2025, 5, 1).Add(15 * time.Hour))
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, 3000, one.Steps)

	missing, err := c.GetDay(day(2025, 5, 2))
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, c.DeleteDays([]time.Time{day(2025, 4, 29)}))

	all, err = c.GetDays(time.Time{}, day(2025, 12, 31))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

var cmpDays = cmp.Comparer(func(a, b *models.Day) bool {
	return a.Date.Equal(b.Date) && a.Steps == b.Steps && a.Goal == b.Goal
})
