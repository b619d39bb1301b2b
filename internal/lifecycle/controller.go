package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rosbox/rosbox/internal/config"
	"github.com/rosbox/rosbox/internal/engine"
	"github.com/rosbox/rosbox/internal/naming"
	"github.com/rosbox/rosbox/internal/paths"
)

// Drives the per-target state transitions against a container engine.
//
// The controller holds no state of its own: engine state is observed fresh
// before every decision and the resolved target is recomputed by the caller
// on every invocation. Repeated invocations therefore converge on a single
// running container per target.
type Controller struct {
	engine engine.Engine
	root   string // Project root, for Dockerfile and build context paths.
}

// Creates a controller bound to an engine and a project root.
func New(e engine.Engine, root string) *Controller {
	return &Controller{engine: e, root: root}
}

// Builds the target's image.
//
// The build is unconditional: an existing image under the same tag is
// overwritten, because the Dockerfile may have changed without a tag bump.
// Engine-level build failures pass through verbatim.
func (c *Controller) Build(ctx context.Context, rt *config.ResolvedTarget) error {
	id := naming.Derive(rt.Author, rt.Workspace, rt.Distro, rt.Tag)

	if err := config.WriteSnapshot(rt, id, paths.SnapshotFile(c.root)); err != nil {
		return err
	}

	slog.Info("building image",
		"target", rt.Name,
		"image", id.Image,
		"base", rt.BaseImage,
		"stage", rt.BuildStage,
		"platform", rt.Platform,
	)

	return c.engine.BuildImage(ctx, engine.BuildSpec{
		Dockerfile: paths.Dockerfile(c.root, rt.Dockerfile),
		Context:    paths.BuildContext(c.root),
		Image:      id.Image,
		Stage:      rt.BuildStage,
		BaseImage:  rt.BaseImage,
		Platform:   rt.Platform,
		BuildArgs:  rt.Entry.BuildArgs(),
		Labels:     c.labels(rt),
	})
}

// Runs the target: create the container, or join the one that exists.
//
// The transition depends only on freshly observed engine state:
//
//   - image absent: fail with [ErrImageMissing]; run never builds.
//   - container running: attach another interactive session to it.
//   - container stopped: start it, preserving in-container state, then attach.
//   - container absent: create and start it, then attach.
//
// A create that loses the name to a concurrently racing invocation is
// treated as success-by-convergence: the state is re-observed and the run
// falls through to the join path.
func (c *Controller) Run(ctx context.Context, rt *config.ResolvedTarget) error {
	id := naming.Derive(rt.Author, rt.Workspace, rt.Distro, rt.Tag)

	if err := config.WriteSnapshot(rt, id, paths.SnapshotFile(c.root)); err != nil {
		return err
	}

	state, err := engine.Observe(ctx, c.engine, id.Image, id.Container)
	if err != nil {
		return err
	}

	if !state.ImageExists {
		return fmt.Errorf("%w: %s (run 'rosbox build %s' first)", ErrImageMissing, id.Image, rt.Name)
	}

	if !state.ContainerExists {
		if err := c.create(ctx, rt, id); err != nil {
			return err
		}
		// Re-observe: either we created the container, or a racing
		// invocation did. Both continue on the join path below.
		if state, err = engine.Observe(ctx, c.engine, id.Image, id.Container); err != nil {
			return err
		}
	}

	if !state.ContainerRunning {
		slog.Info("starting stopped container", "container", id.Container)
		if err := c.engine.StartContainer(ctx, id.Container); err != nil {
			return err
		}
	} else {
		slog.Info("joining running container", "container", id.Container)
	}

	return c.engine.Attach(ctx, engine.AttachSpec{
		Name:    id.Container,
		Workdir: rt.Entry.Workspace,
		Cmd:     []string{"/bin/bash", "-c", "/entrypoint.sh ; exec " + rt.Entry.RunCmd},
	})
}

// Creates the target's container.
//
// A name conflict means another invocation created it between our observe
// and our create; that is convergence, not an error.
func (c *Controller) create(ctx context.Context, rt *config.ResolvedTarget, id naming.Identity) error {
	mounts := []engine.Mount{
		{Host: c.workspaceHostPath(), Container: rt.Entry.Workspace},
		{Host: "/etc/localtime", Container: "/etc/localtime", ReadOnly: true},
	}
	for _, v := range rt.ExtraVolumes {
		mounts = append(mounts, engine.Mount{Host: v.Host, Container: v.Container})
	}

	slog.Info("creating container", "container", id.Container, "image", id.Image)

	err := c.engine.CreateContainer(ctx, engine.CreateSpec{
		Image:    id.Image,
		Name:     id.Container,
		Platform: rt.Platform,
		Env:      rt.Entry.Environ(),
		Workdir:  rt.Entry.Workspace,
		Cmd:      []string{rt.Entry.RunCmd},
		Mounts:   mounts,
		Hostname: hostname(),
		Labels:   c.labels(rt),
	})
	if err != nil {
		if engine.IsNameConflict(err) {
			slog.Debug("container created by concurrent invocation", "container", id.Container)
			return nil
		}
		return err
	}
	return nil
}

// Pushes the target's image to the configured registry.
//
// Fails with [ErrNotBuilt] when the image does not exist locally. The image
// is tagged under the registry reference, pushed, and the registry alias is
// untagged again; push failures from the engine pass through verbatim.
func (c *Controller) Push(ctx context.Context, rt *config.ResolvedTarget) error {
	id := naming.Derive(rt.Author, rt.Workspace, rt.Distro, rt.Tag)

	exists, err := c.engine.ImageExists(ctx, id.Image)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s (run 'rosbox build %s' first)", ErrNotBuilt, id.Image, rt.Name)
	}

	ref := id.RegistryRef(rt.Registry)
	slog.Info("pushing image", "image", id.Image, "ref", ref)

	if err := c.engine.TagImage(ctx, id.Image, ref); err != nil {
		return err
	}
	if err := c.engine.PushImage(ctx, ref); err != nil {
		return err
	}
	return c.engine.RemoveImage(ctx, ref)
}

// What clean removed.
type CleanResult struct {
	Containers []string
	Images     []string
}

// Removes every container and image this tool created for the author.
//
// Candidates must carry the managed label and match the derived naming
// pattern; both filters must agree. Objects that merely share a substring
// with the pattern are never touched.
func (c *Controller) Clean(ctx context.Context, author string) (*CleanResult, error) {
	pattern := naming.OwnedBy(author)
	result := &CleanResult{}

	containers, err := c.engine.ListContainers(ctx)
	if err != nil {
		return nil, err
	}
	for _, ctr := range containers {
		if !pattern.MatchContainer(ctr.Name) {
			continue
		}
		slog.Info("removing container", "container", ctr.Name)
		if err := c.engine.RemoveContainer(ctx, ctr.Name); err != nil {
			return result, err
		}
		result.Containers = append(result.Containers, ctr.Name)
	}

	images, err := c.engine.ListImages(ctx)
	if err != nil {
		return result, err
	}
	for _, img := range images {
		if !pattern.MatchImage(img.Name) {
			continue
		}
		slog.Info("removing image", "image", img.Name)
		if err := c.engine.RemoveImage(ctx, img.Name); err != nil {
			return result, err
		}
		result.Images = append(result.Images, img.Name)
	}

	return result, nil
}

// Observes the engine state for one target without changing anything.
func (c *Controller) Status(ctx context.Context, rt *config.ResolvedTarget) (engine.State, error) {
	id := naming.Derive(rt.Author, rt.Workspace, rt.Distro, rt.Tag)
	return engine.Observe(ctx, c.engine, id.Image, id.Container)
}

// Ownership labels stamped on everything built or created for a target.
func (c *Controller) labels(rt *config.ResolvedTarget) map[string]string {
	return map[string]string{
		engine.LabelManaged: "true",
		engine.LabelAuthor:  rt.Author,
		engine.LabelTarget:  rt.Name,
	}
}

// The host workspace directory mounted into the container.
func (c *Controller) workspaceHostPath() string {
	if c.root != "" {
		return c.root
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// The host name, reused inside the container for X11 friendliness.
func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return h
}
