package config

import "github.com/stepsquad/stepsquad/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errParseEnv = &apperr.Error{
		Message: "parsing environment failed",
	}

	errInvalidGoal = &apperr.Error{
		Message: "daily goal must be between %d and %d steps, got %d",
	}

	errUnknownSource = &apperr.Error{
		Message: "unknown sensor source: %s (must be simulated or replay)",
	}

	errUnknownPermission = &apperr.Error{
		Message: "unknown sensor permission: %s",
	}

	errMissingReplayPath = &apperr.Error{
		Message: "the replay sensor requires a replay path",
	}

	errInvalidInterval = &apperr.Error{
		Message: "sensor interval must be at least %v",
	}

	errInvalidCadence = &apperr.Error{
		Message: "sensor cadence must be between 0 and %d steps per minute",
	}

	errInvalidBaseURL = &apperr.Error{
		Message: "api base url must be an absolute http(s) url, got %q",
	}

	errInvalidTimeout = &apperr.Error{
		Message: "api timeout must be positive",
	}

	errUnknownActivityType = &apperr.Error{
		Message: "unknown activity type: %s (must be STEPS or WATER)",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
	}

	errEmptyStorageKey = &apperr.Error{
		Message: "storage key cannot be empty",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse date: %s",
	}
)
