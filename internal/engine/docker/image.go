package docker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/errdefs"

	"github.com/rosbox/rosbox/internal/engine"
)

// Builds an image by running "docker build" with inherited stdio.
//
// The CLI is used deliberately: it routes through BuildKit, streams build
// progress the way users expect, and honors buildx/QEMU setup for
// cross-platform stages. Build failures (Dockerfile errors, network
// failures) surface verbatim through the CLI's own output and exit code.
// An existing image under the same tag is overwritten unconditionally.
func (e *Engine) BuildImage(ctx context.Context, spec engine.BuildSpec) error {
	args := []string{"build", "--pull", "--rm",
		"-f", spec.Dockerfile,
		"-t", spec.Image,
	}
	if spec.Stage != "" {
		args = append(args, "--target", spec.Stage)
	}
	if spec.Platform != "" {
		args = append(args, "--platform", spec.Platform)
	}
	if spec.BaseImage != "" {
		args = append(args, "--build-arg", "BASE_IMAGE="+spec.BaseImage)
	}
	for _, k := range sortedKeys(spec.BuildArgs) {
		args = append(args, "--build-arg", k+"="+spec.BuildArgs[k])
	}
	for _, k := range sortedKeys(spec.Labels) {
		args = append(args, "--label", k+"="+spec.Labels[k])
	}
	args = append(args, spec.Context)

	slog.Debug("building image", "image", spec.Image, "dockerfile", spec.Dockerfile)

	return runDocker(ctx, args)
}

// Tags an existing local image under a new reference.
func (e *Engine) TagImage(ctx context.Context, source, target string) error {
	if err := e.cli.ImageTag(ctx, source, target); err != nil {
		return classify(err)
	}
	return nil
}

// Pushes an image reference by running "docker push" with inherited stdio.
//
// The CLI path picks up the user's credential helpers; push failures pass
// through verbatim.
func (e *Engine) PushImage(ctx context.Context, ref string) error {
	slog.Debug("pushing image", "ref", ref)
	return runDocker(ctx, []string{"push", ref})
}

// Removes an image reference. Removing an absent image is not an error.
func (e *Engine) RemoveImage(ctx context.Context, ref string) error {
	_, err := e.cli.ImageRemove(ctx, ref, image.RemoveOptions{Force: true})
	if err != nil && !errdefs.IsNotFound(err) {
		return classify(err)
	}

	slog.Debug("image removed", "ref", ref)
	return nil
}

// Lists all image references carrying this tool's managed label.
//
// One image record may carry several tags; each tag is reported as its own
// object so the caller can pattern-match references individually.
func (e *Engine) ListImages(ctx context.Context) ([]engine.Object, error) {
	images, err := e.cli.ImageList(ctx, image.ListOptions{
		Filters: filters.NewArgs(filters.Arg("label", engine.LabelManaged+"=true")),
	})
	if err != nil {
		return nil, classify(err)
	}

	var objects []engine.Object
	for _, img := range images {
		for _, tag := range img.RepoTags {
			objects = append(objects, engine.Object{ID: img.ID, Name: tag})
		}
	}
	return objects, nil
}

// Runs a docker CLI command with inherited stdio.
func runDocker(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker %s: %w", args[0], err)
	}
	return nil
}

// Returns map keys in stable order so generated CLI args are deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
