package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"

	"github.com/rosbox/rosbox/internal/engine"
)

// How long the initial daemon ping may take before the engine is declared
// unavailable.
const pingTimeout = 5 * time.Second

// Docker implementation of the [engine.Engine] capability surface.
//
// Queries, create, start, and remove go through the Docker API client.
// Build, interactive attach, and push shell out to the docker CLI: the API
// cannot drive a TTY session, and CLI build/push pick up BuildKit and the
// user's registry credential helpers.
type Engine struct {
	cli *client.Client
}

// Connects to the Docker daemon and verifies it is reachable.
//
// Connection parameters come from the environment (DOCKER_HOST etc.). An
// unreachable daemon fails with [engine.ErrUnavailable]; it is never
// reported as "no objects present".
func New(ctx context.Context) (*Engine, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if _, err := cli.Ping(pingCtx); err != nil {
		cli.Close()
		return nil, fmt.Errorf("%w: %w", engine.ErrUnavailable, err)
	}

	return &Engine{cli: cli}, nil
}

// Closes the connection to the daemon.
func (e *Engine) Close() error {
	return e.cli.Close()
}

// Whether an image with the given reference exists locally.
func (e *Engine) ImageExists(ctx context.Context, image string) (bool, error) {
	_, _, err := e.cli.ImageInspectWithRaw(ctx, image)
	if err == nil {
		return true, nil
	}
	if errdefs.IsNotFound(err) {
		return false, nil
	}
	return false, classify(err)
}

// Whether a container with the given name exists, running or not.
func (e *Engine) ContainerExists(ctx context.Context, name string) (bool, error) {
	id, err := e.lookupContainer(ctx, name)
	if err != nil {
		return false, err
	}
	return id != "", nil
}

// Whether a container with the given name is currently running.
func (e *Engine) ContainerRunning(ctx context.Context, name string) (bool, error) {
	id, err := e.lookupContainer(ctx, name)
	if err != nil || id == "" {
		return false, err
	}

	inspect, err := e.cli.ContainerInspect(ctx, id)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return false, nil
		}
		return false, classify(err)
	}
	return inspect.State.Running, nil
}

// Finds a container ID by exact name, or "" when absent.
//
// Docker's name filter is a substring match, so the candidates are compared
// against the exact slash-prefixed name.
func (e *Engine) lookupContainer(ctx context.Context, name string) (string, error) {
	containers, err := e.cli.ContainerList(ctx, listOptions(filters.Arg("name", name)))
	if err != nil {
		return "", classify(err)
	}

	for _, c := range containers {
		for _, n := range c.Names {
			if n == "/"+name {
				return c.ID, nil
			}
		}
	}
	return "", nil
}

// Maps a Docker client error onto the engine taxonomy.
//
// Connection failures become [engine.ErrUnavailable]; name conflicts become
// [engine.ErrNameConflict]; everything else passes through verbatim.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case client.IsErrConnectionFailed(err):
		return fmt.Errorf("%w: %w", engine.ErrUnavailable, err)
	case errdefs.IsConflict(err):
		return fmt.Errorf("%w: %w", engine.ErrNameConflict, err)
	default:
		return err
	}
}
