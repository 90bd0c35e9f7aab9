package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Source        string
	Replay        string
	APIURL        string
	GoalCmd       string
	Sound         string
	LogLevel      string
	Interval      time.Duration
	Goal          int
	DisableNotify bool
	NoSync        bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Goal:          ctx.Int("goal"),
			Source:        ctx.String("source"),
			Replay:        ctx.String("replay"),
			Interval:      ctx.Duration("interval"),
			APIURL:        ctx.String("api-url"),
			GoalCmd:       ctx.String("goal-cmd"),
			Sound:         ctx.String("sound"),
			LogLevel:      ctx.String("log-level"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoSync:        ctx.Bool("no-sync"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Goal > 0 {
		c.Goal.Steps = opts.Goal
	}

	if opts.Source != "" {
		c.Sensor.Source = strings.ToLower(strings.TrimSpace(opts.Source))
	}

	// --replay implies the replay source
	if opts.Replay != "" {
		c.Sensor.Source = SourceReplay
		c.Sensor.ReplayPath = opts.Replay
	}

	if opts.Interval > 0 {
		c.Sensor.Interval = opts.Interval
	}

	if opts.APIURL != "" {
		c.API.BaseURL = opts.APIURL
	}

	if opts.GoalCmd != "" {
		c.Goal.Cmd = opts.GoalCmd
	}

	if opts.Sound != "" {
		if opts.Sound == "off" {
			c.Goal.Sound = ""
		} else {
			c.Goal.Sound = opts.Sound
		}
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.NoSync = opts.NoSync
}
