// Package config loads, validates, and resolves environment descriptions.
//
// An environment description is a single YAML document with two sections:
// a user-edited configuration (author, workspace, ROS2 distro, tier, and
// named targets) and a constants section (base image catalog, supported
// distros, registry). [Load] parses the document; [EnvironmentConfig.Resolve]
// expands one target into a fully materialized [ResolvedTarget], failing
// fast with a named field on any violation.
//
// Resolution is a pure transform: the description is re-read and re-checked
// on every invocation and nothing derived is ever persisted, except for the
// flat KEY=value snapshot written for the Dockerfile and entrypoint plumbing.
//
// Example usage:
//
//	cfg, err := config.Load(paths.ConfigFile(root))
//	if err != nil {
//	    return err
//	}
//
//	rt, err := cfg.Resolve("dev")
//	if err != nil {
//	    return err
//	}
package config
