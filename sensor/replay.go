package sensor

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/stepsquad/stepsquad/stepcounter"
)

// ReplayOptions configures a Replay sensor.
type ReplayOptions struct {
	Logger     *slog.Logger
	Permission stepcounter.Permission
	// Path is a JSON lines file or a directory of them
	Path  string
	Delay time.Duration
}

// Replay plays back recorded readings, one JSON object per line such as
// {"steps": 42}. Directories are replayed file by file in natural order.
type Replay struct {
	log  *slog.Logger
	opts ReplayOptions
}

func NewReplay(opts ReplayOptions) *Replay {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Replay{
		opts: opts,
		log: opts.Logger.With(
			slog.String("sensor", "replay"),
			slog.String("path", opts.Path),
		),
	}
}

func (r *Replay) RequestPermission(
	ctx context.Context,
) (stepcounter.Permission, error) {
	return permissionAnswer(ctx, r.opts.Permission)
}

// IsAvailable reports whether the replay path exists.
func (r *Replay) IsAvailable(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(r.opts.Path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return err == nil, err
}

func (r *Replay) Subscribe(
	fn func(stepcounter.Event),
) (stepcounter.Subscription, error) {
	files, err := r.files()
	if err != nil {
		return nil, err
	}

	return startSubscription(func(ctx context.Context) {
		first := true

		for _, f := range files {
			if !r.replayFile(ctx, f, fn, &first) {
				return
			}
		}

		r.log.Info("replay finished")
	}), nil
}

func (r *Replay) files() ([]string, error) {
	info, err := os.Stat(r.opts.Path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{r.opts.Path}, nil
	}

	entries, err := os.ReadDir(r.opts.Path)
	if err != nil {
		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}

	if len(names) == 0 {
		return nil, errNoReplayFiles.Fmt(r.opts.Path)
	}

	sort.Slice(names, func(i, j int) bool {
		return natural.Less(names[i], names[j])
	})

	files := make([]string, len(names))
	for i, n := range names {
		files[i] = filepath.Join(r.opts.Path, n)
	}

	return files, nil
}

// replayFile emits the readings of one file. It returns false if the
// subscription was released.
func (r *Replay) replayFile(
	ctx context.Context,
	path string,
	fn func(stepcounter.Event),
	first *bool,
) bool {
	f, err := os.Open(path)
	if err != nil {
		r.log.Error("unable to open replay file", slog.Any("error", err))
		return true
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	var line int

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var ev stepcounter.Event

		if err := json.Unmarshal([]byte(text), &ev); err != nil {
			r.log.Warn(
				"skipping malformed reading",
				slog.String("file", filepath.Base(path)),
				slog.Int("line", line),
			)

			continue
		}

		if !*first && !r.wait(ctx) {
			return false
		}

		*first = false

		if ctx.Err() != nil {
			return false
		}

		fn(ev)
	}

	if err := scanner.Err(); err != nil {
		r.log.Error("reading replay file failed", slog.Any("error", err))
	}

	return true
}

func (r *Replay) wait(ctx context.Context) bool {
	if r.opts.Delay <= 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(r.opts.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
