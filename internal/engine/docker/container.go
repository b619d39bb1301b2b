package docker

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/mount"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/rosbox/rosbox/internal/engine"
)

// Creates a named container without starting it.
//
// The name is the uniqueness key: if another process created a container
// with the same name first, the daemon rejects this create and the error is
// classified as [engine.ErrNameConflict] so the caller can converge on the
// existing container.
func (e *Engine) CreateContainer(ctx context.Context, spec engine.CreateSpec) error {
	mounts := make([]mount.Mount, 0, len(spec.Mounts))
	for _, m := range spec.Mounts {
		mounts = append(mounts, mount.Mount{
			Type:     mount.TypeBind,
			Source:   m.Host,
			Target:   m.Container,
			ReadOnly: m.ReadOnly,
		})
	}

	cfg := &container.Config{
		Image:      spec.Image,
		Env:        spec.Env,
		WorkingDir: spec.Workdir,
		Cmd:        spec.Cmd,
		Hostname:   spec.Hostname,
		Labels:     spec.Labels,
		Tty:        true,
		OpenStdin:  true,
	}

	hostCfg := &container.HostConfig{
		Mounts:      mounts,
		NetworkMode: "host",
	}

	_, err := e.cli.ContainerCreate(ctx, cfg, hostCfg, nil, parsePlatform(spec.Platform), spec.Name)
	if err != nil {
		return classify(err)
	}

	slog.Debug("container created", "name", spec.Name, "image", spec.Image)
	return nil
}

// Starts an existing container by name.
func (e *Engine) StartContainer(ctx context.Context, name string) error {
	if err := e.cli.ContainerStart(ctx, name, container.StartOptions{}); err != nil {
		return classify(err)
	}

	slog.Debug("container started", "name", name)
	return nil
}

// Attaches an interactive session to a running container.
//
// Runs "docker exec -it" with inherited stdio; the API client cannot wire a
// TTY through. Blocks until the session ends and passes the CLI's error
// through verbatim.
func (e *Engine) Attach(ctx context.Context, spec engine.AttachSpec) error {
	args := []string{"exec", "-it"}
	if spec.Workdir != "" {
		args = append(args, "-w", spec.Workdir)
	}
	args = append(args, spec.Name)
	args = append(args, spec.Cmd...)

	slog.Debug("attaching session", "name", spec.Name, "cmd", strings.Join(spec.Cmd, " "))

	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Removes a container by name, killing it if necessary.
func (e *Engine) RemoveContainer(ctx context.Context, name string) error {
	if err := e.cli.ContainerRemove(ctx, name, container.RemoveOptions{Force: true}); err != nil {
		return classify(err)
	}

	slog.Debug("container removed", "name", name)
	return nil
}

// Lists all containers carrying this tool's managed label.
func (e *Engine) ListContainers(ctx context.Context) ([]engine.Object, error) {
	containers, err := e.cli.ContainerList(ctx, listOptions(
		filters.Arg("label", engine.LabelManaged+"=true"),
	))
	if err != nil {
		return nil, classify(err)
	}

	objects := make([]engine.Object, 0, len(containers))
	for _, c := range containers {
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}
		objects = append(objects, engine.Object{ID: c.ID, Name: name})
	}
	return objects, nil
}

// List options covering stopped containers, narrowed by the given filters.
func listOptions(args ...filters.KeyValuePair) container.ListOptions {
	return container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(args...),
	}
}

// Parses an OCI platform string (e.g., "linux/arm64") for container create.
//
// Returns nil for an empty platform so the daemon picks the host default.
func parsePlatform(platform string) *ocispec.Platform {
	if platform == "" {
		return nil
	}

	os, arch, ok := strings.Cut(platform, "/")
	if !ok {
		return &ocispec.Platform{OS: platform}
	}

	arch, variant, _ := strings.Cut(arch, "/")
	return &ocispec.Platform{OS: os, Architecture: arch, Variant: variant}
}
