package app

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/stepsquad/stepsquad/internal/pathutil"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 28
)

var (
	logLevel  = new(slog.LevelVar)
	logWriter *lumberjack.Logger
)

// setupLogging routes the default slog logger to a rotating file in the
// stepsquad data directory. The level is raised or lowered once the config
// is loaded.
func setupLogging() {
	logWriter = &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})

	slog.SetDefault(slog.New(handler))
}

func closeLogging() error {
	if logWriter == nil {
		return nil
	}

	return logWriter.Close()
}
