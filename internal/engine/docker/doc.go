// Package docker implements the engine capability surface against the
// Docker daemon.
//
// State queries, container create/start/remove, and image tagging go
// through the Docker API client; connection parameters come from the
// standard environment variables. Image build, registry push, and
// interactive attach shell out to the docker CLI with inherited stdio,
// which keeps BuildKit progress output, credential helpers, and TTY
// handling exactly as users know them.
//
// Every error leaving this package is classified: an unreachable daemon is
// [engine.ErrUnavailable], a lost create race is [engine.ErrNameConflict],
// and engine-level build or push failures pass through verbatim.
package docker
