package cli

import "context"

// Represents the 'rosbox push' command.
type PushCmd struct {
	Target string `arg:"" help:"Target name from the environment description."`
}

// Executes the push command.
//
// Requires the target's image to exist locally; it is tagged under the
// configured registry and pushed unconditionally.
func (c *PushCmd) Run(ctx context.Context) error {
	rt, err := resolveTarget(c.Target)
	if err != nil {
		return err
	}

	ctrl, done, err := newController(ctx)
	if err != nil {
		return err
	}
	defer done()

	return ctrl.Push(ctx, rt)
}
