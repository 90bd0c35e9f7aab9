package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/stepsquad/stepsquad/stepcounter"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyGoalSteps            = "goal.steps"
	keyGoalMessage          = "goal.message"
	keyGoalSound            = "goal.sound"
	keyGoalCmd              = "goal.cmd"
	keySensorSource         = "sensor.source"
	keySensorPermission     = "sensor.permission"
	keySensorAvailable      = "sensor.available"
	keySensorInterval       = "sensor.interval"
	keySensorCadence        = "sensor.cadence"
	keySensorReplayPath     = "sensor.replay_path"
	keySensorReplayDelay    = "sensor.replay_delay"
	keyAPIBaseURL           = "api.base_url"
	keyAPIToken             = "api.token"
	keyAPIActivityType      = "api.activity_type"
	keyAPITimeout           = "api.timeout"
	keyStorageKey           = "storage.key"
	keyLogLevel             = "log.level"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper. The
// config file is created with default values if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyGoalSteps, stepcounter.DefaultGoal)
	v.SetDefault(keyGoalMessage, "Daily step goal reached!")
	v.SetDefault(keyGoalSound, "")
	v.SetDefault(keyGoalCmd, "")
	v.SetDefault(keySensorSource, SourceSimulated)
	v.SetDefault(keySensorPermission, "granted")
	v.SetDefault(keySensorAvailable, true)
	v.SetDefault(keySensorInterval, "1s")
	v.SetDefault(keySensorCadence, 100)
	v.SetDefault(keySensorReplayPath, "")
	v.SetDefault(keySensorReplayDelay, "500ms")
	v.SetDefault(keyAPIBaseURL, "")
	v.SetDefault(keyAPIToken, "")
	v.SetDefault(keyAPIActivityType, "STEPS")
	v.SetDefault(keyAPITimeout, "10s")
	v.SetDefault(keyStorageKey, stepcounter.DefaultStorageKey)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)

	// values answered in the first run prompt
	if c.Goal.Steps != 0 {
		v.Set(keyGoalSteps, c.Goal.Steps)
	}

	if c.Sensor.Source != "" {
		v.Set(keySensorSource, c.Sensor.Source)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
