package tracker

import "github.com/stepsquad/stepsquad/internal/apperr"

var (
	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}

	errPlaySound = &apperr.Error{
		Message: "unable to play goal sound",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file %s must be in mp3, ogg, flac, or wav format",
	}

	errParseGoalCmd = &apperr.Error{
		Message: "unable to parse goal.cmd option",
	}

	errRunGoalCmd = &apperr.Error{
		Message: "goal command failed",
	}
)
