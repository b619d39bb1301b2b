package cli

import "context"

// Represents the 'rosbox build' command.
type BuildCmd struct {
	Target string `arg:"" help:"Target name from the environment description."`
}

// Executes the build command.
//
// Resolves the target, then rebuilds its image unconditionally: an existing
// image under the same tag is overwritten, since the Dockerfile may have
// changed without a tag bump.
func (c *BuildCmd) Run(ctx context.Context) error {
	rt, err := resolveTarget(c.Target)
	if err != nil {
		return err
	}

	ctrl, done, err := newController(ctx)
	if err != nil {
		return err
	}
	defer done()

	return ctrl.Build(ctx, rt)
}
