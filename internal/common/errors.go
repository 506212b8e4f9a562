package common

import "errors"

// Error kinds shared by every layer of the client. Typed errors (gateway.Error,
// validation.Error) match these through errors.Is.
var (
	// ErrNoSession is reported when no usable session is persisted. Callers
	// handle it by redirecting, never by printing it.
	ErrNoSession = errors.New("no session")

	// ErrGateway covers every network or HTTP failure of a remote call.
	ErrGateway = errors.New("gateway error")

	// ErrValidation is reported by client-side field checks before any
	// network call is made.
	ErrValidation = errors.New("validation error")

	// ErrInFlight is returned when a submit is attempted while the previous
	// one has not completed yet.
	ErrInFlight = errors.New("operation already in progress")
)
