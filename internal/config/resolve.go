package config

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/rosbox/rosbox/internal/entry"
)

// Fully materialized build/run parameters for one target.
//
// A ResolvedTarget is a pure function of the environment description; it is
// recomputed on every invocation and never persisted. All validation has
// already happened by the time one exists.
type ResolvedTarget struct {
	Name      string // Target name as given on the command line.
	Author    string // Author, used for naming and ownership scoping.
	Workspace string // Workspace (project) name.
	Distro    string // ROS2 distribution (e.g., "humble").
	Tier      Tier
	Kind      Kind
	Tag       string

	BaseImage    string // Base image with the distro substituted.
	BuildStage   string // Dockerfile stage to build.
	Platform     string // OCI platform (e.g., "linux/arm64").
	Dockerfile   string // Dockerfile name with the middleware substituted.
	Registry     string // Registry host for push.
	ExtraVolumes []Volume

	Entry entry.Config // In-container identity and session parameters.
}

// Resolves a target name into concrete build/run parameters.
//
// Validation is fail-fast and names the offending field, target, or feature:
//
//   - a target name not present in the description fails with
//     [ErrUnknownTarget];
//   - features above the declared tier (extra volumes below tier 2,
//     micro-ROS kinds below tier 3) fail with [ErrTierViolation];
//   - fields still holding their scaffold sentinel fail with
//     [ErrUnfilledPlaceholder];
//   - a ROS2 distribution outside the supported set fails with
//     [ErrUnsupported].
//
// The transform is pure: no file or engine access.
func (c *EnvironmentConfig) Resolve(target string) (*ResolvedTarget, error) {
	cfg := c.Configuration

	if err := checkPlaceholders(cfg); err != nil {
		return nil, err
	}

	if cfg.Tier < Tier1 || cfg.Tier > Tier3 {
		return nil, fmt.Errorf("%w: tier must be 1, 2, or 3, got %d", ErrMalformed, cfg.Tier)
	}

	spec, ok := cfg.Targets[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q (declared targets: %s)",
			ErrUnknownTarget, target, strings.Join(targetNames(cfg.Targets), ", "))
	}

	if err := checkTier(cfg.Tier, target, spec); err != nil {
		return nil, err
	}

	if placeholder(spec.Tag) {
		return nil, fmt.Errorf("%w: targets.%s.tag", ErrUnfilledPlaceholder, target)
	}

	distro := strings.TrimSpace(cfg.ROS2Distro)
	if !supported(distro, c.Constants.Supported.ROS2Distros) {
		return nil, fmt.Errorf("%w: ros2_distro %q (supported: %s)",
			ErrUnsupported, distro, strings.Join(c.Constants.Supported.ROS2Distros, ", "))
	}

	ent := c.entryConfig()
	if err := ent.Validate(); err != nil {
		return nil, err
	}

	return &ResolvedTarget{
		Name:         target,
		Author:       strings.TrimSpace(cfg.AuthorName),
		Workspace:    strings.TrimSpace(cfg.WorkspaceName),
		Distro:       distro,
		Tier:         cfg.Tier,
		Kind:         spec.Kind,
		Tag:          strings.TrimSpace(spec.Tag),
		BaseImage:    c.baseImage(spec.Kind, distro),
		BuildStage:   spec.Kind.Stage(),
		Platform:     spec.Kind.Platform(),
		Dockerfile:   strings.ReplaceAll(c.Constants.Dockerfile, "{middleware}", spec.Kind.Middleware()),
		Registry:     c.Constants.Registry,
		ExtraVolumes: spec.ExtraVolumes,
		Entry:        ent,
	}, nil
}

// Checks the root fields every derivation depends on.
func checkPlaceholders(cfg Configuration) error {
	fields := []struct {
		name  string
		value string
	}{
		{"author_name", cfg.AuthorName},
		{"workspace_name", cfg.WorkspaceName},
		{"ros2_distro", cfg.ROS2Distro},
		{"container.user", cfg.Container.User},
	}
	for _, f := range fields {
		if placeholder(f.value) {
			return fmt.Errorf("%w: %s", ErrUnfilledPlaceholder, f.name)
		}
	}
	return nil
}

// Enforces the tier gating rules for one target.
func checkTier(tier Tier, target string, spec TargetSpec) error {
	switch spec.Kind {
	case KindROS2Develop, KindROS2Deploy, KindMicroROSDevel, KindMicroROSDeploy:
	default:
		return fmt.Errorf("%w: targets.%s.kind %q", ErrMalformed, target, spec.Kind)
	}

	if min := spec.Kind.MinTier(); tier < min {
		return fmt.Errorf("%w: target %q kind %s requires tier %d, description declares tier %d",
			ErrTierViolation, target, spec.Kind, min, tier)
	}

	if len(spec.ExtraVolumes) > 0 && tier < Tier2 {
		return fmt.Errorf("%w: target %q declares extra volumes, which require tier 2 (description declares tier %d)",
			ErrTierViolation, target, tier)
	}

	return nil
}

// Builds the in-container identity from the configuration.
//
// The workspace is mounted directly under the container user's home
// directory.
func (c *EnvironmentConfig) entryConfig() entry.Config {
	user := strings.TrimSpace(c.Configuration.Container.User)
	home := path.Join("/home", user)

	return entry.Config{
		User:      user,
		UID:       c.Configuration.Container.UID,
		GID:       c.Configuration.Container.GID,
		Password:  c.Configuration.Container.Password,
		Home:      home,
		Workspace: path.Join(home, strings.TrimSpace(c.Configuration.WorkspaceName)),
		RunCmd:    c.Configuration.Container.RunCmd,
	}
}

// Selects the base image for a kind and substitutes the distro.
func (c *EnvironmentConfig) baseImage(kind Kind, distro string) string {
	var tmpl string
	switch {
	case kind.MicroROS():
		tmpl = c.Constants.BaseImages.MicroROS
	case kind.Deploy():
		tmpl = c.Constants.BaseImages.ROS2Deploy
	default:
		tmpl = c.Constants.BaseImages.ROS2Develop
	}
	return strings.ReplaceAll(tmpl, "{distro}", distro)
}

// Whether the value appears in the supported set.
func supported(value string, set []string) bool {
	for _, s := range set {
		if value == s {
			return true
		}
	}
	return false
}

// Returns the declared target names in stable order.
func targetNames(targets map[string]TargetSpec) []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
