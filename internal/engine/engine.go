package engine

import (
	"context"
)

// Point-in-time observation of the engine objects for one target.
//
// State is read fresh before every lifecycle decision and discarded after;
// the engine is the source of truth, never this tool.
type State struct {
	ImageExists      bool
	ContainerExists  bool
	ContainerRunning bool
}

// Parameters for building an image.
type BuildSpec struct {
	Dockerfile string            // Path to the Dockerfile.
	Context    string            // Build context directory.
	Image      string            // Tag for the built image.
	Stage      string            // Target stage within the Dockerfile.
	BaseImage  string            // Base image, passed as the BASE_IMAGE build arg.
	Platform   string            // OCI platform (e.g., "linux/arm64").
	BuildArgs  map[string]string // Additional build arguments.
	Labels     map[string]string // Ownership labels stamped on the image.
}

// Parameters for creating a container.
type CreateSpec struct {
	Image    string            // Image the container is created from.
	Name     string            // Container name; the engine arbitrates uniqueness.
	Platform string            // OCI platform the image was built for.
	Env      []string          // Environment variables.
	Workdir  string            // Working directory inside the container.
	Cmd      []string          // Command the container runs.
	Mounts   []Mount           // Bind mounts.
	Hostname string            // Container hostname.
	Labels   map[string]string // Ownership labels stamped on the container.
}

// A host-to-container bind mount.
type Mount struct {
	Host      string
	Container string
	ReadOnly  bool
}

// Parameters for attaching an interactive session to a running container.
type AttachSpec struct {
	Name    string   // Container name.
	Workdir string   // Working directory for the session.
	Cmd     []string // Command to run; the entrypoint wraps it.
}

// Summary of an engine object owned by this tool.
type Object struct {
	ID   string
	Name string // Container name or image reference.
}

// The narrow capability surface the lifecycle controller consumes.
//
// Implementations wrap a concrete container engine. The three queries must
// distinguish "object absent" from "engine unreachable" by returning
// [ErrUnavailable] for the latter; conflating the two would make the
// controller attempt doomed creates against a down daemon. Build and push
// failures are passed through verbatim, not reinterpreted.
type Engine interface {

	// Read-only queries.
	ImageExists(ctx context.Context, image string) (bool, error)
	ContainerExists(ctx context.Context, name string) (bool, error)
	ContainerRunning(ctx context.Context, name string) (bool, error)

	// Image operations.
	BuildImage(ctx context.Context, spec BuildSpec) error
	TagImage(ctx context.Context, source, target string) error
	PushImage(ctx context.Context, ref string) error
	RemoveImage(ctx context.Context, ref string) error
	ListImages(ctx context.Context) ([]Object, error)

	// Container operations.
	CreateContainer(ctx context.Context, spec CreateSpec) error
	StartContainer(ctx context.Context, name string) error
	Attach(ctx context.Context, spec AttachSpec) error
	RemoveContainer(ctx context.Context, name string) error
	ListContainers(ctx context.Context) ([]Object, error)

	Close() error
}

// Observes the full state for one image/container pair.
func Observe(ctx context.Context, e Engine, image, container string) (State, error) {
	var s State
	var err error

	if s.ImageExists, err = e.ImageExists(ctx, image); err != nil {
		return State{}, err
	}
	if s.ContainerExists, err = e.ContainerExists(ctx, container); err != nil {
		return State{}, err
	}
	if s.ContainerExists {
		if s.ContainerRunning, err = e.ContainerRunning(ctx, container); err != nil {
			return State{}, err
		}
	}

	return s, nil
}
