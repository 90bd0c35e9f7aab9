package app

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/stepsquad/stepsquad/internal/pathutil"
	"github.com/stepsquad/stepsquad/sensor"
	"github.com/stepsquad/stepsquad/stepcounter"
	"github.com/stepsquad/stepsquad/store"
	"github.com/stepsquad/stepsquad/tracker"
)

const flushTimeout = 5 * time.Second

// trackAction starts the step counter and the live view. It is the default
// action.
func trackAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	src, err := sensor.New(cfg.Sensor, slog.Default())
	if err != nil {
		return err
	}

	opts := stepcounter.Options{
		Store:       db,
		Sensor:      src,
		Logger:      slog.Default(),
		StorageKey:  cfg.Storage.Key,
		DefaultGoal: cfg.Goal.Steps,
		SyncTimeout: cfg.API.Timeout,
	}

	client, err := newActivityClient(cfg)
	if err != nil {
		return err
	}

	if client != nil {
		opts.Activity = client
	}

	engine, err := stepcounter.New(opts)
	if err != nil {
		return err
	}

	defer drain(engine)

	err = engine.Start(ctx.Context)
	if err != nil {
		return err
	}

	alert := tracker.NewAlert(cfg.Goal, cfg.Notifications.Enabled, slog.Default())

	model := tracker.New(tracker.Options{
		Engine:    engine,
		History:   db,
		Logger:    slog.Default(),
		OnGoal:    alert.Run,
		DarkTheme: cfg.Display.DarkTheme,
	})

	_, err = tea.NewProgram(model, tea.WithContext(ctx.Context)).Run()

	return err
}

// drain stops the engine and waits for the queued writes and syncs to
// finish before the store is closed.
func drain(engine *stepcounter.Engine) {
	engine.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	err := engine.Flush(ctx)
	if err != nil {
		slog.Warn("pending step updates were not saved", slog.Any("error", err))
	}

	for _, err := range engine.EffectErrors() {
		slog.Warn("step update failed", slog.Any("error", err))
	}
}
