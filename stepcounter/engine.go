package stepcounter

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/stepsquad/stepsquad/internal/models"
)

const defaultSyncTimeout = 10 * time.Second

// Options configures an Engine. Store and Sensor are required; Activity is
// optional and disables the goal lookup and remote sync when nil.
type Options struct {
	Store       Store
	Sensor      Sensor
	Activity    ActivityAPI
	Logger      *slog.Logger
	StorageKey  string
	DefaultGoal int
	SyncTimeout time.Duration
}

// Engine reconciles a live pedometer stream with the persisted step total.
// Only one Engine should use a given storage key at a time.
type Engine struct {
	sub      Subscription
	log      *slog.Logger
	effects  *effectQueue
	opts     Options
	watchers []chan Snapshot
	state    sessionState
	mu       sync.Mutex
	started  bool
	stopped  bool
}

// New returns an Engine in the checking state. Callers must call Stop to
// release it.
func New(opts Options) (*Engine, error) {
	if opts.Store == nil {
		return nil, errMissingStore
	}

	if opts.Sensor == nil {
		return nil, errMissingSensor
	}

	if opts.StorageKey == "" {
		opts.StorageKey = DefaultStorageKey
	}

	if opts.DefaultGoal <= 0 {
		opts.DefaultGoal = DefaultGoal
	}

	if opts.SyncTimeout <= 0 {
		opts.SyncTimeout = defaultSyncTimeout
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	e := &Engine{
		opts: opts,
		log:  opts.Logger.With(slog.String("component", "stepcounter")),
		state: sessionState{
			status: StatusChecking,
		},
	}

	e.effects = newEffectQueue(e.runEffect)

	return e, nil
}

// Start loads the persisted total, negotiates sensor access and subscribes
// to the step stream. It returns once the sensor status is settled. Storage
// and sensor failures are not returned: they settle into the state.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()

	if e.stopped {
		e.mu.Unlock()
		return errStopped
	}

	if e.started {
		e.mu.Unlock()
		return errAlreadyStarted
	}

	e.started = true
	e.mu.Unlock()

	if e.opts.Activity != nil {
		go e.fetchActivity(ctx)
	}

	loaded, readErr := e.loadPersisted()

	e.mu.Lock()

	if e.stopped {
		e.mu.Unlock()
		return nil
	}

	e.state.loadedSteps = loaded
	e.state.currentTotal = loaded
	e.state.watchBaseline = nil
	e.state.loaded = true

	if readErr != nil {
		// the stored total is unknown, so leave it alone until steps arrive
		e.publishLocked()
	} else {
		e.commitLocked()
	}

	e.mu.Unlock()

	e.log.DebugContext(ctx, "requesting sensor permission")

	perm, err := e.opts.Sensor.RequestPermission(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		e.log.ErrorContext(ctx, "permission request failed", slog.Any("error", err))
	}

	e.log.DebugContext(ctx, "permission status", slog.String("status", string(perm)))

	if perm != PermissionGranted {
		e.settle(StatusDenied)
		return nil
	}

	available, err := e.opts.Sensor.IsAvailable(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		e.log.ErrorContext(ctx, "availability probe failed", slog.Any("error", err))
	}

	if !available {
		e.settle(StatusUnavailable)
		return nil
	}

	if !e.settle(StatusGranted) {
		return nil
	}

	sub, err := e.opts.Sensor.Subscribe(e.handleEvent)
	if err != nil {
		e.log.ErrorContext(ctx, "sensor subscription failed", slog.Any("error", err))
		e.settle(StatusUnavailable)

		return nil
	}

	e.mu.Lock()

	if e.stopped {
		e.mu.Unlock()
		sub.Unsubscribe()

		return nil
	}

	e.sub = sub
	e.mu.Unlock()

	e.log.InfoContext(ctx, "watching step count")

	return nil
}

// loadPersisted reads the last durable total. Anything other than a valid
// non-negative integer counts as no prior data. A read failure also yields
// zero and is returned so the caller can avoid overwriting the stored value.
func (e *Engine) loadPersisted() (int, error) {
	value, ok, err := e.opts.Store.GetItem(e.opts.StorageKey)
	if err != nil {
		e.log.Error("failed to load steps", slog.Any("error", err))
		return 0, err
	}

	if !ok {
		return 0, nil
	}

	steps, valid := ParseSteps(value)
	if !valid {
		e.log.Warn("ignoring invalid stored steps", slog.String("value", value))
		return 0, nil
	}

	e.log.Info("loaded steps from storage", slog.Int("steps", steps))

	return steps, nil
}

// settle moves the sensor status out of checking. It reports false if the
// engine was stopped in the meantime.
func (e *Engine) settle(status Status) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return false
	}

	e.state.status = status
	e.log.Info("sensor status changed", slog.String("status", string(status)))
	e.publishLocked()

	return true
}

func (e *Engine) handleEvent(ev Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped || !e.state.loaded {
		return
	}

	changed, reset := e.state.reconcile(ev.Steps)

	if reset {
		e.log.Warn(
			"negative step delta detected",
			slog.Int("raw", ev.Steps),
			slog.Int("baseline", *e.state.watchBaseline),
		)
	}

	if !changed {
		return
	}

	e.log.Debug("steps updated", slog.Int("total", e.state.currentTotal))

	e.commitLocked()
}

func (e *Engine) fetchActivity(ctx context.Context) {
	act, err := e.opts.Activity.Today(ctx)
	if err != nil {
		e.log.Error("failed to fetch activity", slog.Any("error", err))
		return
	}

	if act == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return
	}

	e.state.activity = act

	if e.state.loaded {
		e.queueSyncLocked()
	}

	e.publishLocked()
}

// commitLocked queues the side effects of a changed total and publishes the
// new snapshot.
func (e *Engine) commitLocked() {
	e.effects.push(effect{
		kind:  effectPersist,
		total: e.state.currentTotal,
	})

	e.queueSyncLocked()
	e.publishLocked()
}

func (e *Engine) queueSyncLocked() {
	act := e.state.activity
	if act == nil {
		return
	}

	e.effects.push(effect{
		kind:     effectSync,
		total:    e.state.currentTotal,
		activity: &activityRef{id: act.ID, date: act.Date},
	})
}

func (e *Engine) runEffect(ef effect) error {
	switch ef.kind {
	case effectPersist:
		err := e.opts.Store.SetItem(e.opts.StorageKey, strconv.Itoa(ef.total))
		if err != nil {
			e.log.Error("failed to save steps", slog.Any("error", err))
			return errPersist.Wrap(err)
		}
	case effectSync:
		ctx, cancel := context.WithTimeout(
			context.Background(),
			e.opts.SyncTimeout,
		)
		defer cancel()

		_, err := e.opts.Activity.Update(ctx, models.ActivityUpdate{
			ID:       ef.activity.id,
			Date:     ef.activity.date,
			Quantity: ef.total,
		})
		if err != nil {
			e.log.Error("failed to update activity", slog.Any("error", err))
			return errSync.Wrap(err)
		}

		e.log.Debug("activity updated", slog.Int("steps", ef.total))
	case effectBarrier:
	}

	return nil
}

func (e *Engine) publishLocked() {
	snap := e.state.snapshot(e.opts.DefaultGoal)

	for _, ch := range e.watchers {
		select {
		case ch <- snap:
		default:
			// replace the stale value nobody has read yet
			select {
			case <-ch:
			default:
			}

			ch <- snap
		}
	}
}

// Snapshot returns the current observable state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.snapshot(e.opts.DefaultGoal)
}

// Watch returns a channel that receives the latest snapshot after every
// change, starting with the current one. Slow readers only see the most
// recent value. The channel is closed by Stop.
func (e *Engine) Watch() <-chan Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	ch := make(chan Snapshot, 1)

	if e.stopped {
		close(ch)
		return ch
	}

	ch <- e.state.snapshot(e.opts.DefaultGoal)

	e.watchers = append(e.watchers, ch)

	return ch
}

// Flush waits until every side effect queued so far has completed.
func (e *Engine) Flush(ctx context.Context) error {
	return e.effects.flush(ctx)
}

// EffectErrors returns the persistence and sync failures seen so far.
func (e *Engine) EffectErrors() []error {
	return e.effects.errors()
}

// Stop unsubscribes from the sensor. No state changes happen after Stop
// returns; side effects already queued are allowed to finish.
func (e *Engine) Stop() {
	e.mu.Lock()

	if e.stopped {
		e.mu.Unlock()
		return
	}

	e.stopped = true

	sub := e.sub
	e.sub = nil

	for _, ch := range e.watchers {
		close(ch)
	}

	e.watchers = nil
	e.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}

	e.effects.close()

	e.log.Info("step counter stopped")
}

// ParseSteps parses a persisted step total. Only non-negative decimal
// integers are valid.
func ParseSteps(value string) (int, bool) {
	steps, err := strconv.Atoi(value)
	if err != nil || steps < 0 {
		return 0, false
	}

	return steps, true
}

// IsSyncError reports whether err came from the remote activity sync.
func IsSyncError(err error) bool {
	return errors.Is(err, errSync)
}

// IsPersistError reports whether err came from writing the durable store.
func IsPersistError(err error) bool {
	return errors.Is(err, errPersist)
}
