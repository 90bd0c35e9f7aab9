package sensor

import "github.com/stepsquad/stepsquad/internal/apperr"

var (
	errUnknownSource = &apperr.Error{
		Message: "unknown sensor source: %s",
	}

	errNoReplayFiles = &apperr.Error{
		Message: "no replay files found in %s",
	}
)
