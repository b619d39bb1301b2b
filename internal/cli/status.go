package cli

import (
	"context"
	"fmt"

	"github.com/gookit/color"

	"github.com/rosbox/rosbox/internal/engine"
	"github.com/rosbox/rosbox/internal/naming"
)

// Represents the 'rosbox status' command.
type StatusCmd struct{}

// Executes the status command.
//
// Reports the observed engine state for every declared target. Read-only:
// no transition is ever triggered from here.
func (c *StatusCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctrl, done, err := newController(ctx)
	if err != nil {
		return err
	}
	defer done()

	for i, target := range sortedTargets(cfg) {
		rt, err := cfg.Resolve(target)
		if err != nil {
			return err
		}

		state, err := ctrl.Status(ctx, rt)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Println()
		}
		printState(rt.Name, naming.Derive(rt.Author, rt.Workspace, rt.Distro, rt.Tag), state)
	}
	return nil
}

// Prints the state of one target's image and container.
func printState(target string, id naming.Identity, state engine.State) {
	fmt.Printf("Target %s\n", target)
	fmt.Printf("  image      %-45s %s\n", id.Image, imageMarker(state))
	fmt.Printf("  container  %-45s %s\n", id.Container, containerMarker(state))
}

// Marker for image presence.
func imageMarker(state engine.State) string {
	if state.ImageExists {
		return color.Green.Sprint("[OK]")
	}
	return color.Red.Sprint("[MISSING]")
}

// Marker for container presence and activity.
func containerMarker(state engine.State) string {
	switch {
	case state.ContainerRunning:
		return color.Green.Sprint("[RUNNING]")
	case state.ContainerExists:
		return color.Yellow.Sprint("[STOPPED]")
	default:
		return color.Red.Sprint("[ABSENT]")
	}
}
