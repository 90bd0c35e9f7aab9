package config

import (
	"log/slog"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/stepsquad/stepsquad/internal/models"
)

var (
	minGoal = 100
	maxGoal = 100_000

	minSensorInterval = 100 * time.Millisecond
	maxCadence        = 300

	validPermissions = []string{"granted", "denied", "undetermined"}
	validLogLevels   = []string{"debug", "info", "warn", "error"}
	validSoundExts   = []string{".mp3", ".ogg", ".flac", ".wav"}

	validActivityTypes = []models.ActivityType{
		models.ActivitySteps,
		models.ActivityWater,
	}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateGoal(); err != nil {
		return err
	}

	if err := c.validateSensor(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Storage.Key) == "" {
		return errEmptyStorageKey
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return errUnknownLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateGoal() error {
	if c.Goal.Steps < minGoal || c.Goal.Steps > maxGoal {
		return errInvalidGoal.Fmt(minGoal, maxGoal, c.Goal.Steps)
	}

	if c.Goal.Sound != "" {
		ext := strings.ToLower(filepath.Ext(c.Goal.Sound))
		if !slices.Contains(validSoundExts, ext) {
			return errInvalidSoundFormat.Fmt(c.Goal.Sound)
		}
	}

	return nil
}

func (c *Config) validateSensor() error {
	switch c.Sensor.Source {
	case SourceSimulated:
		if c.Sensor.Interval < minSensorInterval {
			return errInvalidInterval.Fmt(minSensorInterval)
		}

		if c.Sensor.Cadence < 0 || c.Sensor.Cadence > maxCadence {
			return errInvalidCadence.Fmt(maxCadence)
		}
	case SourceReplay:
		if strings.TrimSpace(c.Sensor.ReplayPath) == "" {
			return errMissingReplayPath
		}
	default:
		return errUnknownSource.Fmt(c.Sensor.Source)
	}

	if !slices.Contains(validPermissions, c.Sensor.Permission) {
		return errUnknownPermission.Fmt(c.Sensor.Permission)
	}

	return nil
}

func (c *Config) validateAPI() error {
	if !slices.Contains(validActivityTypes, models.ActivityType(c.API.ActivityType)) {
		return errUnknownActivityType.Fmt(c.API.ActivityType)
	}

	if c.API.BaseURL == "" {
		return nil
	}

	u, err := url.ParseRequestURI(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errInvalidBaseURL.Fmt(c.API.BaseURL)
	}

	if c.API.Timeout <= 0 {
		return errInvalidTimeout
	}

	return nil
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
