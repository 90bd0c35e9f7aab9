package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		CLI           CLIConfig          `mapstructure:"-"`
		Goal          GoalConfig         `mapstructure:"goal"`
		Sensor        SensorConfig       `mapstructure:"sensor"`
		API           APIConfig          `mapstructure:"api"`
		Storage       StorageConfig      `mapstructure:"storage"`
		Log           LogConfig          `mapstructure:"log"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// GoalConfig holds the daily goal and what happens when it is reached.
	GoalConfig struct {
		Message string `mapstructure:"message"`
		Sound   string `mapstructure:"sound"`
		Cmd     string `mapstructure:"cmd"`
		Steps   int    `mapstructure:"steps"`
	}

	// SensorConfig selects and tunes the pedometer source.
	SensorConfig struct {
		Source      string        `mapstructure:"source"`
		Permission  string        `mapstructure:"permission"`
		ReplayPath  string        `mapstructure:"replay_path"`
		Interval    time.Duration `mapstructure:"interval"`
		ReplayDelay time.Duration `mapstructure:"replay_delay"`
		Cadence     int           `mapstructure:"cadence"`
		Available   bool          `mapstructure:"available"`
	}

	// APIConfig holds the remote activity API settings. Remote sync is
	// disabled when BaseURL is empty.
	APIConfig struct {
		BaseURL      string        `mapstructure:"base_url"      env:"STEPSQUAD_API_URL"`
		Token        string        `mapstructure:"token"         env:"STEPSQUAD_API_TOKEN"`
		ActivityType string        `mapstructure:"activity_type"`
		Timeout      time.Duration `mapstructure:"timeout"       env:"STEPSQUAD_API_TIMEOUT"`
	}

	// StorageConfig holds durable store settings.
	StorageConfig struct {
		Key string `mapstructure:"key"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level" env:"STEPSQUAD_LOG_LEVEL"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// CLIConfig holds settings that only come from command-line flags.
	CLIConfig struct {
		NoSync bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	SourceSimulated = "simulated"
	SourceReplay    = "replay"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}

// SyncEnabled reports whether the remote activity API should be used.
func (c *Config) SyncEnabled() bool {
	return c.API.BaseURL != "" && !c.CLI.NoSync
}
