package cli

import "context"

// Represents the 'rosbox run' command.
type RunCmd struct {
	Target string `arg:"" help:"Target name from the environment description."`
}

// Executes the run command.
//
// Creates the target's container, or joins the one that already exists:
// a stopped container is started (not recreated) and a running one gets an
// additional interactive session. Fails fast when the image has not been
// built; run never builds implicitly.
func (c *RunCmd) Run(ctx context.Context) error {
	rt, err := resolveTarget(c.Target)
	if err != nil {
		return err
	}

	ctrl, done, err := newController(ctx)
	if err != nil {
		return err
	}
	defer done()

	return ctrl.Run(ctx, rt)
}
