package cli

import (
	"context"
	"fmt"
	"log/slog"
)

// Represents the 'rosbox clean' command.
type CleanCmd struct{}

// Executes the clean command.
//
// Removes every container and image this tool created for the configured
// author. Candidates must carry the managed label and match the derived
// naming pattern; unrelated objects are never touched.
func (c *CleanCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	author, err := cfg.Author()
	if err != nil {
		return err
	}

	ctrl, done, err := newController(ctx)
	if err != nil {
		return err
	}
	defer done()

	result, err := ctrl.Clean(ctx, author)
	if err != nil {
		return err
	}

	slog.Info("clean finished",
		"containers", len(result.Containers),
		"images", len(result.Images),
	)
	fmt.Printf("Removed %d container(s) and %d image(s).\n",
		len(result.Containers), len(result.Images))
	return nil
}
