package stepcounter

import (
	"context"
	"sync"

	"github.com/stepsquad/stepsquad/internal/models"
)

type effectKind int

const (
	effectPersist effectKind = iota
	effectSync
	effectBarrier
)

// effect is an outbound side effect of a committed state change.
type effect struct {
	activity *activityRef
	done     chan struct{}
	kind     effectKind
	total    int
}

type activityRef struct {
	date models.Date
	id   int64
}

// effectQueue runs effects one at a time in the order they were queued.
type effectQueue struct {
	run     func(effect) error
	wake    chan struct{}
	exited  chan struct{}
	pending []effect
	errs    []error
	mu      sync.Mutex
	closed  bool
}

func newEffectQueue(run func(effect) error) *effectQueue {
	q := &effectQueue{
		run:    run,
		wake:   make(chan struct{}, 1),
		exited: make(chan struct{}),
	}

	go q.loop()

	return q
}

func (q *effectQueue) push(e effect) bool {
	q.mu.Lock()

	if q.closed {
		q.mu.Unlock()
		return false
	}

	q.pending = append(q.pending, e)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}

	return true
}

func (q *effectQueue) loop() {
	defer close(q.exited)

	for {
		q.mu.Lock()

		if len(q.pending) == 0 {
			closed := q.closed
			q.mu.Unlock()

			if closed {
				return
			}

			<-q.wake

			continue
		}

		e := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		if e.kind == effectBarrier {
			close(e.done)
			continue
		}

		if err := q.run(e); err != nil {
			q.mu.Lock()
			q.errs = append(q.errs, err)
			q.mu.Unlock()
		}
	}
}

// flush blocks until every effect queued before the call has run.
func (q *effectQueue) flush(ctx context.Context) error {
	done := make(chan struct{})

	if !q.push(effect{kind: effectBarrier, done: done}) {
		done = q.exited
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close stops accepting effects. Queued effects still run.
func (q *effectQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *effectQueue) errors() []error {
	q.mu.Lock()
	defer q.mu.Unlock()

	errs := make([]error, len(q.errs))
	copy(errs, q.errs)

	return errs
}
