package sensor

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/stepsquad/stepsquad/stepcounter"
)

// SimulatedOptions configures a Simulated sensor.
type SimulatedOptions struct {
	Logger     *slog.Logger
	Permission stepcounter.Permission
	Interval   time.Duration
	// Cadence is the average number of steps per minute
	Cadence   int
	Available bool
	Seed      uint64
}

// Simulated is a pedometer that walks at a jittered cadence.
type Simulated struct {
	log  *slog.Logger
	opts SimulatedOptions
}

func NewSimulated(opts SimulatedOptions) *Simulated {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}

	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	return &Simulated{
		opts: opts,
		log:  opts.Logger.With(slog.String("sensor", "simulated")),
	}
}

func (s *Simulated) RequestPermission(
	ctx context.Context,
) (stepcounter.Permission, error) {
	return permissionAnswer(ctx, s.opts.Permission)
}

func (s *Simulated) IsAvailable(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return s.opts.Available, nil
}

// Subscribe emits a reading immediately and then once per interval. Steps
// count from zero for every subscription.
func (s *Simulated) Subscribe(
	fn func(stepcounter.Event),
) (stepcounter.Subscription, error) {
	rng := rand.New(rand.NewPCG(s.opts.Seed, s.opts.Seed>>1))
	perTick := float64(s.opts.Cadence) * s.opts.Interval.Minutes()

	return startSubscription(func(ctx context.Context) {
		ticker := time.NewTicker(s.opts.Interval)
		defer ticker.Stop()

		var (
			steps int
			carry float64
		)

		fn(stepcounter.Event{Steps: steps})

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			// between half and one and a half times the average cadence
			carry += perTick * (0.5 + rng.Float64())
			whole := int(carry)
			carry -= float64(whole)
			steps += whole

			s.log.Debug("emitting reading", slog.Int("steps", steps))

			fn(stepcounter.Event{Steps: steps})
		}
	}), nil
}
