package httputil

import "errors"

// Errors for request parsing that are returned to API clients.
var (
	ErrInvalidBody      = errors.New("the request body contains invalid or un-parseable data, please check it and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)
