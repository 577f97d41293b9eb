package session

import "errors"

var (
	// ErrEngineUnavailable means the container engine daemon did not answer
	// the liveness probe. Fatal, never retried.
	ErrEngineUnavailable = errors.New("container engine unavailable")

	// ErrNoImage means no locally available image matched the selector.
	ErrNoImage = errors.New("no image available")

	// ErrNoSuchContainer means an explicitly selected container does not exist.
	ErrNoSuchContainer = errors.New("no such container")

	// ErrStartTimeout means a stopped container was asked to start but never
	// reached the running state within the poll budget.
	ErrStartTimeout = errors.New("cannot start container")

	// ErrUnhandledStatus means the resolved container is in a state
	// (paused, restarting, dead, ...) with no defined recovery.
	ErrUnhandledStatus = errors.New("cannot handle current container status")

	// ErrUnknownDistro means the positional distro argument is not one of
	// the distros images are built for.
	ErrUnknownDistro = errors.New("unknown distro")

	// ErrInvalidOptions covers selector and flag combinations that cannot be
	// acted on.
	ErrInvalidOptions = errors.New("invalid options")
)
