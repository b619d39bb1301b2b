package engine

import "errors"

var (

	// The engine daemon cannot be reached. Never conflated with an absent
	// object and never retried automatically: a down daemon needs user
	// action, not a retry loop.
	ErrUnavailable = errors.New("container engine unavailable")

	// A create lost the name to another process. The lifecycle controller
	// treats this as convergence, not failure.
	ErrNameConflict = errors.New("container name already taken")
)

// Whether the error chain reports a lost create race.
func IsNameConflict(err error) bool {
	return errors.Is(err, ErrNameConflict)
}

// Whether the error chain reports an unreachable engine daemon.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
