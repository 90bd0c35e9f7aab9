// Package sensor provides pedometer sources for the step counter
package sensor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/stepsquad/stepsquad/internal/config"
	"github.com/stepsquad/stepsquad/stepcounter"
)

// subscription runs an emitter goroutine until it is released.
type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func startSubscription(emit func(ctx context.Context)) *subscription {
	ctx, cancel := context.WithCancel(context.Background())

	s := &subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(s.done)

		emit(ctx)
	}()

	return s
}

// Unsubscribe stops the emitter and waits for it to exit.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Done is closed once the emitter has no more events to deliver.
func (s *subscription) Done() <-chan struct{} {
	return s.done
}

func permissionAnswer(
	ctx context.Context,
	p stepcounter.Permission,
) (stepcounter.Permission, error) {
	if err := ctx.Err(); err != nil {
		return stepcounter.PermissionUndetermined, err
	}

	return p, nil
}

// New returns the sensor source selected in cfg.
func New(cfg config.SensorConfig, logger *slog.Logger) (stepcounter.Sensor, error) {
	if logger == nil {
		logger = slog.Default()
	}

	permission := stepcounter.Permission(cfg.Permission)

	switch cfg.Source {
	case config.SourceSimulated:
		return NewSimulated(SimulatedOptions{
			Permission: permission,
			Available:  cfg.Available,
			Interval:   cfg.Interval,
			Cadence:    cfg.Cadence,
			Logger:     logger,
		}), nil
	case config.SourceReplay:
		return NewReplay(ReplayOptions{
			Path:       cfg.ReplayPath,
			Delay:      cfg.ReplayDelay,
			Permission: permission,
			Logger:     logger,
		}), nil
	default:
		return nil, errUnknownSource.Fmt(cfg.Source)
	}
}
