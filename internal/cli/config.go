package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/rosbox/rosbox/internal/config"
	"github.com/rosbox/rosbox/internal/naming"
)

// Represents the 'rosbox config' command.
type ConfigCmd struct {
	Target string `arg:"" optional:"" help:"Limit output to one target."`
}

// Executes the config command.
//
// Resolves and prints the materialized parameter set without touching the
// engine. With no argument every declared target is dumped.
func (c *ConfigCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	targets := []string{c.Target}
	if c.Target == "" {
		targets = sortedTargets(cfg)
	}

	for i, target := range targets {
		rt, err := cfg.Resolve(target)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		printResolved(rt)
	}
	return nil
}

// Prints one resolved target as its flat parameter set.
func printResolved(rt *config.ResolvedTarget) {
	id := naming.Derive(rt.Author, rt.Workspace, rt.Distro, rt.Tag)
	snapshot := config.Snapshot(rt, id)

	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("Target %s (kind %s, tier %d)\n", rt.Name, rt.Kind, rt.Tier)
	for _, k := range keys {
		fmt.Printf("  %-18s %s\n", k, snapshot[k])
	}
}
