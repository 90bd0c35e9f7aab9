package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/kballard/go-shellquote"

	"github.com/stepsquad/stepsquad/internal/config"
	"github.com/stepsquad/stepsquad/stepcounter"
)

const (
	notificationTitle = "stepsquad"
	soundBufferSize   = 10
)

// Alert performs the actions configured for when the daily goal is reached.
type Alert struct {
	log    *slog.Logger
	notify func(title, message, appIcon string) error
	play   func(path string) error
	run    func(ctx context.Context, name string, args ...string) error
	cfg    config.GoalConfig
	// Notify enables the desktop notification
	Notify bool
}

// NewAlert returns an Alert for the goal settings in cfg.
func NewAlert(cfg config.GoalConfig, notify bool, logger *slog.Logger) *Alert {
	if logger == nil {
		logger = slog.Default()
	}

	return &Alert{
		log:    logger.With(slog.String("component", "alert")),
		notify: beeep.Notify,
		play:   playSound,
		run:    runCmd,
		cfg:    cfg,
		Notify: notify,
	}
}

// Run sends the notification, plays the sound and runs the goal command.
// A failing action does not prevent the others.
func (a *Alert) Run(ctx context.Context, snap stepcounter.Snapshot) error {
	var errs []error

	if a.Notify {
		msg := fmt.Sprintf("%s (%d/%d steps)",
			a.cfg.Message,
			snap.CurrentStepCount,
			snap.StepGoal,
		)

		if err := a.notify(notificationTitle, msg, ""); err != nil {
			errs = append(errs, errNotify.Wrap(err))
		}
	}

	if a.cfg.Sound != "" {
		if err := a.play(a.cfg.Sound); err != nil {
			errs = append(errs, errPlaySound.Wrap(err))
		}
	}

	if err := a.runGoalCmd(ctx); err != nil {
		errs = append(errs, err)
	}

	a.log.Info("goal reached",
		slog.Int("steps", snap.CurrentStepCount),
		slog.Int("goal", snap.StepGoal),
	)

	return errors.Join(errs...)
}

// runGoalCmd executes the configured goal command.
func (a *Alert) runGoalCmd(ctx context.Context) error {
	if a.cfg.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(a.cfg.Cmd)
	if err != nil {
		return errParseGoalCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	err = a.run(ctx, cmdSlice[0], cmdSlice[1:]...)
	if err != nil {
		return errRunGoalCmd.Wrap(err)
	}

	return nil
}

func runCmd(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// playSound plays the audio file at path and blocks until it ends.
func playSound(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		return err
	}

	defer stream.Close()

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Second/soundBufferSize),
	)
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done

	speaker.Clear()
	speaker.Close()

	return nil
}
