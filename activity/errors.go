package activity

import (
	"errors"

	"github.com/stepsquad/stepsquad/internal/apperr"
)

var (
	errInvalidBaseURL = &apperr.Error{
		Message: "invalid activity api url: %q",
	}

	errUnauthorized = &apperr.Error{
		Message: "activity api rejected the token: log in again",
	}

	errUnexpectedStatus = &apperr.Error{
		Message: "activity api returned status %d: %s",
	}

	errRequest = &apperr.Error{
		Message: "activity api request failed",
	}

	errUnknownPeriod = &apperr.Error{
		Message: "unknown leaderboard period: %s (must be DAILY, WEEKLY or MONTHLY)",
	}

	errDecode = &apperr.Error{
		Message: "unable to decode activity api response",
	}
)

// IsUnauthorized reports whether err means the API token was rejected.
func IsUnauthorized(err error) bool {
	return errors.Is(err, errUnauthorized)
}
