package cli

import (
	"context"
	"sort"

	"github.com/rosbox/rosbox/internal/config"
	"github.com/rosbox/rosbox/internal/engine/docker"
	"github.com/rosbox/rosbox/internal/lifecycle"
	"github.com/rosbox/rosbox/internal/paths"
)

// Loads the environment description for the selected project root.
func loadConfig() (*config.EnvironmentConfig, error) {
	return config.Load(paths.ConfigFile(RootCmd.Root))
}

// Loads the environment description and resolves one target.
func resolveTarget(target string) (*config.ResolvedTarget, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(target)
}

// Connects to the engine and builds a lifecycle controller around it.
//
// The returned closer releases the engine connection.
func newController(ctx context.Context) (*lifecycle.Controller, func(), error) {
	eng, err := docker.New(ctx)
	if err != nil {
		return nil, nil, err
	}
	return lifecycle.New(eng, RootCmd.Root), func() { eng.Close() }, nil
}

// Returns the declared target names in stable order.
func sortedTargets(cfg *config.EnvironmentConfig) []string {
	names := make([]string, 0, len(cfg.Configuration.Targets))
	for name := range cfg.Configuration.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
