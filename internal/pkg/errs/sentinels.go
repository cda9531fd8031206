package errs

import "errors"

// Failure classes for the synchronization core. Operations mark their errors
// with one of these so callers can branch without inspecting messages.
// Superseded results (stale loads, cancelled discount attempts) are not
// errors at all: the services drop them silently.
var (
	// ErrTransport marks any network or server failure on an outbound call.
	ErrTransport = errors.New("transport failure")

	// ErrValidation marks a client-side precondition violation; no network
	// call was made.
	ErrValidation = errors.New("validation failure")
)
