package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Feature-unlock level of an environment description.
//
// Tiers are monotonic: everything permitted at a tier is permitted at every
// higher tier. Tier 2 unlocks extra volume mounts, tier 3 unlocks the
// micro-ROS target kinds.
type Tier int

const (
	Tier1 Tier = 1
	Tier2 Tier = 2
	Tier3 Tier = 3
)

// Variant of build/run parameters a target selects.
type Kind string

const (
	KindROS2Develop    Kind = "ros2-develop"
	KindROS2Deploy     Kind = "ros2-deploy"
	KindMicroROSDevel  Kind = "microros-develop"
	KindMicroROSDeploy Kind = "microros-deploy"
)

// Whether the kind targets the micro-ROS middleware.
func (k Kind) MicroROS() bool {
	return k == KindMicroROSDevel || k == KindMicroROSDeploy
}

// Whether the kind produces a deploy (on-robot) image.
func (k Kind) Deploy() bool {
	return k == KindROS2Deploy || k == KindMicroROSDeploy
}

// The Dockerfile stage the kind builds.
func (k Kind) Stage() string {
	if k.Deploy() {
		return "deploy-stage"
	}
	return "develop-stage"
}

// The OCI platform the kind targets.
//
// Develop images run on the workstation, deploy images on the robot's ARM
// board, possibly cross-built under QEMU.
func (k Kind) Platform() string {
	if k.Deploy() {
		return "linux/arm64"
	}
	return "linux/amd64"
}

// The middleware name substituted into Dockerfile templates.
func (k Kind) Middleware() string {
	if k.MicroROS() {
		return "micro-ros"
	}
	return "ros2"
}

// The lowest tier at which the kind is permitted.
func (k Kind) MinTier() Tier {
	if k.MicroROS() {
		return Tier3
	}
	return Tier1
}

// A single host-to-container bind mount.
type Volume struct {
	Host      string `yaml:"host"`
	Container string `yaml:"container"`
}

// Per-target build/run parameters from the environment description.
type TargetSpec struct {
	Kind         Kind     `yaml:"kind"`
	Tag          string   `yaml:"tag"`
	ExtraVolumes []Volume `yaml:"extra_volumes"`
}

// Identity of the user inside the containers.
type ContainerUser struct {
	User     string `yaml:"user"`
	UID      int    `yaml:"uid"`
	GID      int    `yaml:"gid"`
	Password string `yaml:"password"`
	RunCmd   string `yaml:"run_cmd"`
}

// The user-edited section of the environment description.
type Configuration struct {
	AuthorName    string                `yaml:"author_name"`
	WorkspaceName string                `yaml:"workspace_name"`
	ROS2Distro    string                `yaml:"ros2_distro"`
	Tier          Tier                  `yaml:"tier"`
	Container     ContainerUser         `yaml:"container"`
	Targets       map[string]TargetSpec `yaml:"targets"`
}

// The constants section of the environment description.
//
// These rarely change between projects; Load fills defaults for anything
// omitted.
type Constants struct {
	Supported struct {
		ROS2Distros []string `yaml:"ros2_distros"`
	} `yaml:"supported"`
	BaseImages struct {
		ROS2Develop string `yaml:"ros2_develop"`
		ROS2Deploy  string `yaml:"ros2_deploy"`
		MicroROS    string `yaml:"microros"`
	} `yaml:"base_images"`
	Dockerfile string `yaml:"dockerfile"`
	Registry   string `yaml:"registry"`
}

// The root declarative document describing one environment.
type EnvironmentConfig struct {
	Configuration Configuration `yaml:"configuration"`
	Constants     Constants     `yaml:"constants"`
}

// Reads and parses an environment description.
//
// Syntactic failures are reported as [ErrMalformed]; semantic validation
// happens later, per target, in [EnvironmentConfig.Resolve]. The document
// is re-read on every invocation, and nothing is cached between runs.
func Load(path string) (*EnvironmentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return Parse(data)
}

// Parses an environment description from raw bytes.
func Parse(data []byte) (*EnvironmentConfig, error) {
	var cfg EnvironmentConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Fills defaults for omitted constants and container fields.
func (c *EnvironmentConfig) applyDefaults() {
	if len(c.Constants.Supported.ROS2Distros) == 0 {
		c.Constants.Supported.ROS2Distros = []string{"humble", "iron", "jazzy", "rolling"}
	}
	if c.Constants.BaseImages.ROS2Develop == "" {
		c.Constants.BaseImages.ROS2Develop = "osrf/ros:{distro}-desktop-full"
	}
	if c.Constants.BaseImages.ROS2Deploy == "" {
		c.Constants.BaseImages.ROS2Deploy = "arm64v8/ros:{distro}-ros-base"
	}
	if c.Constants.BaseImages.MicroROS == "" {
		c.Constants.BaseImages.MicroROS = "microros/base:{distro}"
	}
	if c.Constants.Dockerfile == "" {
		c.Constants.Dockerfile = "Dockerfile.{middleware}"
	}
	if c.Constants.Registry == "" {
		c.Constants.Registry = "ghcr.io"
	}
	if c.Configuration.Container.RunCmd == "" {
		c.Configuration.Container.RunCmd = "/bin/bash"
	}
}

// Returns the configured author name.
//
// Fails with [ErrUnfilledPlaceholder] when the field was never filled in;
// clean scopes its removals by author and must not run with a sentinel.
func (c *EnvironmentConfig) Author() (string, error) {
	if placeholder(c.Configuration.AuthorName) {
		return "", fmt.Errorf("%w: author_name", ErrUnfilledPlaceholder)
	}
	return strings.TrimSpace(c.Configuration.AuthorName), nil
}

// Whether a field value still holds its template placeholder.
//
// Scaffolded descriptions mark fields the user must fill with angle-bracket
// sentinels (e.g., "<your-name>"); an empty string counts as unfilled too.
func placeholder(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return true
	}
	return strings.HasPrefix(v, "<") && strings.HasSuffix(v, ">")
}
