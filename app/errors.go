package app

import "github.com/stepsquad/stepsquad/internal/apperr"

var errSyncDisabled = &apperr.Error{
	Message: "the %s command needs the activity api: set api.base_url or pass --api-url",
}
