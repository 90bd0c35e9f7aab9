package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepsquad/stepsquad/activity"
	"github.com/stepsquad/stepsquad/internal/config"
	"github.com/stepsquad/stepsquad/internal/models"
	"github.com/stepsquad/stepsquad/store"
)

const testKey = "@StepSquad:currentStepCount"

func newTestDB(t *testing.T) *store.Client {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "stepsquad.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Goal:    config.GoalConfig{Steps: 10000},
		Storage: config.StorageConfig{Key: testKey},
		API:     config.APIConfig{Timeout: time.Second},
	}
}

func plainOutput(t *testing.T) {
	t.Helper()

	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)
}

func newActivityServer(t *testing.T, a models.Activity) *activity.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(a)
		},
	))
	t.Cleanup(srv.Close)

	c, err := activity.New(activity.Options{
		BaseURL: srv.URL,
		Timeout: time.Second,
	})
	require.NoError(t, err)

	return c
}

func TestResetClearsSavedSteps(t *testing.T) {
	plainOutput(t)

	db := newTestDB(t)
	require.NoError(t, db.SetItem(testKey, "4321"))

	var out bytes.Buffer

	err := resetSteps(
		context.Background(),
		strings.NewReader("\n"),
		&out,
		db,
		testKey,
	)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "4321")

	_, ok, err := db.GetItem(testKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResetWithoutSavedSteps(t *testing.T) {
	plainOutput(t)

	db := newTestDB(t)
	require.NoError(t, db.SetItem("other", "12"))

	var out bytes.Buffer

	err := resetSteps(
		context.Background(),
		strings.NewReader(""),
		&out,
		db,
		testKey,
	)
	require.NoError(t, err)

	assert.Contains(t, out.String(), noSavedStepsMsg)

	v, ok, err := db.GetItem("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12", v)
}

func TestStatus(t *testing.T) {
	plainOutput(t)

	t.Run("default goal", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, db.SetItem(testKey, "4200"))

		var out bytes.Buffer

		err := printStatus(context.Background(), &out, testConfig(), db, nil)
		require.NoError(t, err)

		assert.Equal(t, "4200 / 10000 steps\n", out.String())
	})

	t.Run("goal from history", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, db.SetItem(testKey, "6500"))
		require.NoError(t, db.UpdateDay(&models.Day{
			Date:  time.Now(),
			Steps: 6500,
			Goal:  6000,
		}))

		var out bytes.Buffer

		err := printStatus(context.Background(), &out, testConfig(), db, nil)
		require.NoError(t, err)

		assert.Equal(t, "6500 / 6000 steps (goal reached)\n", out.String())
	})

	t.Run("goal from activity record", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, db.SetItem(testKey, "4200"))
		require.NoError(t, db.UpdateDay(&models.Day{
			Date: time.Now(),
			Goal: 6000,
		}))

		client := newActivityServer(t, models.Activity{ID: 1, Goal: 4000})

		var out bytes.Buffer

		err := printStatus(context.Background(), &out, testConfig(), db, client)
		require.NoError(t, err)

		assert.Equal(t, "4200 / 4000 steps (goal reached)\n", out.String())
	})

	t.Run("invalid saved value", func(t *testing.T) {
		db := newTestDB(t)
		require.NoError(t, db.SetItem(testKey, "abc"))

		var out bytes.Buffer

		err := printStatus(context.Background(), &out, testConfig(), db, nil)
		require.NoError(t, err)

		assert.Equal(t, "0 / 10000 steps\n", out.String())
	})
}
