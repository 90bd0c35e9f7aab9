package sensor

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepsquad/stepsquad/internal/config"
	"github.com/stepsquad/stepsquad/stepcounter"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type recorder struct {
	steps []int
	mu    sync.Mutex
}

func (r *recorder) record(ev stepcounter.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps = append(r.steps, ev.Steps)
}

func (r *recorder) got() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int(nil), r.steps...)
}

type doner interface {
	Done() <-chan struct{}
}

func waitDone(t *testing.T, sub stepcounter.Subscription) {
	t.Helper()

	d, ok := sub.(doner)
	require.True(t, ok)

	select {
	case <-d.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("replay did not finish")
	}
}

func TestReplayDirectoryInNaturalOrder(t *testing.T) {
	r := NewReplay(ReplayOptions{
		Path:       "testdata/walk",
		Permission: stepcounter.PermissionGranted,
		Logger:     discard,
	})

	ok, err := r.IsAvailable(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	rec := &recorder{}

	sub, err := r.Subscribe(rec.record)
	require.NoError(t, err)

	waitDone(t, sub)
	sub.Unsubscribe()

	assert.Equal(t, []int{0, 40, 95, 130, 180}, rec.got())
}

func TestReplaySingleFile(t *testing.T) {
	r := NewReplay(ReplayOptions{
		Path:   "testdata/single.jsonl",
		Delay:  time.Millisecond,
		Logger: discard,
	})

	rec := &recorder{}

	sub, err := r.Subscribe(rec.record)
	require.NoError(t, err)

	waitDone(t, sub)

	assert.Equal(t, []int{12, 30}, rec.got())
}

func TestReplayMissingPath(t *testing.T) {
	r := NewReplay(ReplayOptions{Path: "testdata/nope", Logger: discard})

	ok, err := r.IsAvailable(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.Subscribe(func(stepcounter.Event) {})
	assert.Error(t, err)
}

func TestReplayUnsubscribeStopsEarly(t *testing.T) {
	r := NewReplay(ReplayOptions{
		Path:   "testdata/walk",
		Delay:  time.Hour,
		Logger: discard,
	})

	rec := &recorder{}

	sub, err := r.Subscribe(rec.record)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(rec.got()) == 1
	}, time.Second, time.Millisecond)

	sub.Unsubscribe()

	assert.Equal(t, []int{0}, rec.got())
}

func TestSimulatedEmitsIncreasingReadings(t *testing.T) {
	s := NewSimulated(SimulatedOptions{
		Permission: stepcounter.PermissionGranted,
		Available:  true,
		Interval:   5 * time.Millisecond,
		Cadence:    60000,
		Seed:       42,
		Logger:     discard,
	})

	perm, err := s.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stepcounter.PermissionGranted, perm)

	rec := &recorder{}

	sub, err := s.Subscribe(rec.record)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(rec.got()) >= 5
	}, 2*time.Second, time.Millisecond)

	sub.Unsubscribe()

	steps := rec.got()
	assert.Equal(t, 0, steps[0])

	for i := 1; i < len(steps); i++ {
		assert.GreaterOrEqual(t, steps[i], steps[i-1])
	}

	assert.Greater(t, steps[len(steps)-1], 0)

	// no readings after release
	n := len(rec.got())

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, rec.got(), n)
}

func TestSimulatedCancelledPermission(t *testing.T) {
	s := NewSimulated(SimulatedOptions{Permission: stepcounter.PermissionGranted})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.RequestPermission(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFromConfig(t *testing.T) {
	s, err := New(config.SensorConfig{
		Source:     config.SourceSimulated,
		Permission: "denied",
		Interval:   time.Second,
	}, discard)
	require.NoError(t, err)

	perm, err := s.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stepcounter.PermissionDenied, perm)

	_, err = New(config.SensorConfig{Source: "gps"}, discard)
	assert.Error(t, err)
}
