package activity

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepsquad/stepsquad/internal/models"
)

const testToken = "s3cret"

// fakeBackend mimics the activity endpoints of the REST backend.
type fakeBackend struct {
	activity   models.Activity
	ranking    map[string][]models.LeaderboardEntry
	requestIDs []string
	mu         sync.Mutex
}

func (b *fakeBackend) router() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(b.auth)

	api.HandleFunc("/activity", b.get).
		Methods(http.MethodGet).
		Queries("type", "{type}")
	api.HandleFunc("/activity", b.patch).Methods(http.MethodPatch)
	api.HandleFunc("/leaderboard", b.leaderboard).
		Methods(http.MethodGet).
		Queries("period", "{period}")

	return r
}

func (b *fakeBackend) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		b.mu.Lock()
		b.requestIDs = append(b.requestIDs, r.Header.Get(requestIDHeader))
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) get(w http.ResponseWriter, r *http.Request) {
	if mux.Vars(r)["type"] != string(models.ActivitySteps) {
		http.Error(w, "unknown activity type", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	_ = json.NewEncoder(w).Encode(b.activity)
}

func (b *fakeBackend) patch(w http.ResponseWriter, r *http.Request) {
	var req models.ActivityUpdate

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if req.ID != b.activity.ID {
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}

	b.activity.Quantity = req.Quantity
	b.activity.IsGoalReached = req.Quantity >= b.activity.Goal

	_ = json.NewEncoder(w).Encode(b.activity)
}

func (b *fakeBackend) leaderboard(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries, ok := b.ranking[mux.Vars(r)["period"]]
	if !ok {
		http.Error(w, "unknown period", http.StatusBadRequest)
		return
	}

	_ = json.NewEncoder(w).Encode(entries)
}

func newTestClient(t *testing.T, token string) (*Client, *fakeBackend) {
	t.Helper()

	backend := &fakeBackend{
		activity: models.Activity{
			ID:     3,
			UserID: 9,
			Date:   models.NewDate(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
			Type:   models.ActivitySteps,
			Goal:   8000,
		},
		ranking: map[string][]models.LeaderboardEntry{
			"DAILY": {
				{ID: 9, FirstName: "Ada", LastName: "Obi", TotalSteps: 9100, Position: 2},
				{ID: 4, FirstName: "Lin", LastName: "Park", TotalSteps: 12000, Position: 1},
			},
			"WEEKLY": {},
		},
	}

	srv := httptest.NewServer(backend.router())
	t.Cleanup(srv.Close)

	c, err := New(Options{
		BaseURL: srv.URL + "/api",
		Token:   token,
		Timeout: time.Second,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return c, backend
}

func TestToday(t *testing.T) {
	c, backend := newTestClient(t, testToken)

	a, err := c.Today(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), a.ID)
	assert.Equal(t, 8000, a.Goal)
	assert.Equal(t, "2025-05-01", a.Date.String())

	require.Len(t, backend.requestIDs, 1)
	assert.NotEmpty(t, backend.requestIDs[0])
}

func TestUpdate(t *testing.T) {
	c, _ := newTestClient(t, testToken)

	a, err := c.Today(context.Background())
	require.NoError(t, err)

	updated, err := c.Update(context.Background(), models.ActivityUpdate{
		ID:       a.ID,
		Date:     a.Date,
		Quantity: 8100,
	})
	require.NoError(t, err)

	assert.Equal(t, 8100, updated.Quantity)
	assert.True(t, updated.IsGoalReached)
}

func TestUnauthorized(t *testing.T) {
	c, _ := newTestClient(t, "expired")

	_, err := c.Today(context.Background())
	assert.True(t, IsUnauthorized(err))
}

func TestUnexpectedStatus(t *testing.T) {
	c, _ := newTestClient(t, testToken)

	_, err := c.Update(context.Background(), models.ActivityUpdate{ID: 404})
	require.Error(t, err)

	assert.ErrorIs(t, err, errUnexpectedStatus)
	assert.Contains(t, err.Error(), "activity not found")
}

func TestInvalidBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "not a url"})
	assert.ErrorIs(t, err, errInvalidBaseURL)
}

func TestLeaderboard(t *testing.T) {
	c, _ := newTestClient(t, testToken)

	entries, err := c.Leaderboard(context.Background(), models.LeaderboardDaily)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Lin Park", entries[0].Name())
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, 9100, entries[1].TotalSteps)

	entries, err = c.Leaderboard(context.Background(), models.LeaderboardWeekly)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLeaderboardUnknownPeriod(t *testing.T) {
	c, backend := newTestClient(t, testToken)

	_, err := c.Leaderboard(context.Background(), "YEARLY")
	assert.ErrorIs(t, err, errUnknownPeriod)
	assert.Empty(t, backend.requestIDs, "no request should be sent")
}
