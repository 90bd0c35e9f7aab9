package config

import (
	"github.com/caarlos0/env/v11"
)

// WithEnvConfig returns an Option that overrides settings from STEPSQUAD_*
// environment variables.
func WithEnvConfig() Option {
	return func(c *Config) error {
		if err := env.Parse(c); err != nil {
			return errParseEnv.Wrap(err)
		}

		return nil
	}
}
