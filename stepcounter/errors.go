package stepcounter

import "github.com/stepsquad/stepsquad/internal/apperr"

var (
	errMissingStore = &apperr.Error{
		Message: "a durable store is required",
	}

	errMissingSensor = &apperr.Error{
		Message: "a sensor source is required",
	}

	errAlreadyStarted = &apperr.Error{
		Message: "step counter has already been started",
	}

	errStopped = &apperr.Error{
		Message: "step counter has been stopped",
	}

	errPersist = &apperr.Error{
		Message: "failed to save steps",
	}

	errSync = &apperr.Error{
		Message: "failed to update activity",
	}
)
