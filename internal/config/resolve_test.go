package config

import (
	"errors"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	cfg := mustParse(t, validDoc)

	rt, err := cfg.Resolve("dev")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if rt.Author != "acme" || rt.Workspace != "ws" || rt.Distro != "humble" {
		t.Fatalf("root fields = %q/%q/%q", rt.Author, rt.Workspace, rt.Distro)
	}
	if rt.Kind != KindROS2Develop || rt.Tag != "v1" {
		t.Fatalf("target fields = %s/%q", rt.Kind, rt.Tag)
	}
	if rt.BaseImage != "osrf/ros:humble-desktop-full" {
		t.Fatalf("base image = %q", rt.BaseImage)
	}
	if rt.BuildStage != "develop-stage" {
		t.Fatalf("stage = %q", rt.BuildStage)
	}
	if rt.Platform != "linux/amd64" {
		t.Fatalf("platform = %q", rt.Platform)
	}
	if rt.Dockerfile != "Dockerfile.ros2" {
		t.Fatalf("dockerfile = %q", rt.Dockerfile)
	}
}

func TestResolveDeployTarget(t *testing.T) {
	cfg := mustParse(t, validDoc)

	rt, err := cfg.Resolve("deploy")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if rt.BaseImage != "arm64v8/ros:humble-ros-base" {
		t.Fatalf("base image = %q", rt.BaseImage)
	}
	if rt.BuildStage != "deploy-stage" {
		t.Fatalf("stage = %q", rt.BuildStage)
	}
	if rt.Platform != "linux/arm64" {
		t.Fatalf("platform = %q", rt.Platform)
	}
}

func TestResolveMicroROSTarget(t *testing.T) {
	cfg := mustParse(t, validDoc)

	rt, err := cfg.Resolve("agent")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if rt.Dockerfile != "Dockerfile.micro-ros" {
		t.Fatalf("dockerfile = %q", rt.Dockerfile)
	}
	if rt.BaseImage != "microros/base:humble" {
		t.Fatalf("base image = %q", rt.BaseImage)
	}
	if len(rt.ExtraVolumes) != 1 || rt.ExtraVolumes[0].Host != "/data/bags" {
		t.Fatalf("extra volumes = %v", rt.ExtraVolumes)
	}
}

func TestResolveEntryConfig(t *testing.T) {
	cfg := mustParse(t, validDoc)

	rt, err := cfg.Resolve("dev")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if rt.Entry.Home != "/home/ros" {
		t.Fatalf("home = %q, want /home/ros", rt.Entry.Home)
	}
	if rt.Entry.Workspace != "/home/ros/ws" {
		t.Fatalf("workspace = %q, want /home/ros/ws", rt.Entry.Workspace)
	}
	if rt.Entry.UID != 1000 || rt.Entry.GID != 1000 {
		t.Fatalf("uid/gid = %d/%d", rt.Entry.UID, rt.Entry.GID)
	}
}

func TestResolveUnknownTarget(t *testing.T) {
	cfg := mustParse(t, validDoc)

	_, err := cfg.Resolve("nope")
	if !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("err = %v, want ErrUnknownTarget", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Fatalf("error %q does not name the target", err)
	}
}

func TestResolveMicroROSBelowTier3(t *testing.T) {
	for _, tier := range []string{"1", "2"} {
		doc := strings.Replace(validDoc, "tier: 3", "tier: "+tier, 1)
		cfg := mustParse(t, doc)

		_, err := cfg.Resolve("agent")
		if !errors.Is(err, ErrTierViolation) {
			t.Fatalf("tier %s: err = %v, want ErrTierViolation", tier, err)
		}
		if !strings.Contains(err.Error(), "microros-deploy") {
			t.Fatalf("tier %s: error %q does not name the offending kind", tier, err)
		}
	}
}

func TestResolveExtraVolumesAtTier1(t *testing.T) {
	doc := strings.Replace(validDoc, "tier: 3", "tier: 1", 1)
	doc = strings.Replace(doc, "kind: microros-deploy", "kind: ros2-develop", 1)
	cfg := mustParse(t, doc)

	_, err := cfg.Resolve("agent")
	if !errors.Is(err, ErrTierViolation) {
		t.Fatalf("err = %v, want ErrTierViolation", err)
	}
	if !strings.Contains(err.Error(), "extra volumes") {
		t.Fatalf("error %q does not name the offending feature", err)
	}
}

func TestResolveExtraVolumesAtTier2(t *testing.T) {
	doc := strings.Replace(validDoc, "tier: 3", "tier: 2", 1)
	doc = strings.Replace(doc, "kind: microros-deploy", "kind: ros2-develop", 1)
	cfg := mustParse(t, doc)

	if _, err := cfg.Resolve("agent"); err != nil {
		t.Fatalf("extra volumes at tier 2 should resolve: %v", err)
	}
}

func TestResolveUnfilledPlaceholder(t *testing.T) {
	cases := map[string]string{
		"author_name":    strings.Replace(validDoc, "author_name: acme", "author_name: <your-name>", 1),
		"workspace_name": strings.Replace(validDoc, "workspace_name: ws", `workspace_name: ""`, 1),
		"ros2_distro":    strings.Replace(validDoc, "ros2_distro: humble", "ros2_distro: <distro>", 1),
		"container.user": strings.Replace(validDoc, "user: ros", "user: <container-user>", 1),
	}

	for field, doc := range cases {
		cfg := mustParse(t, doc)

		_, err := cfg.Resolve("dev")
		if !errors.Is(err, ErrUnfilledPlaceholder) {
			t.Fatalf("%s: err = %v, want ErrUnfilledPlaceholder", field, err)
		}
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("%s: error %q does not name the field", field, err)
		}
	}
}

func TestResolveUnfilledTag(t *testing.T) {
	doc := strings.Replace(validDoc, "tag: v1", "tag: <tag>", 1)
	cfg := mustParse(t, doc)

	_, err := cfg.Resolve("dev")
	if !errors.Is(err, ErrUnfilledPlaceholder) {
		t.Fatalf("err = %v, want ErrUnfilledPlaceholder", err)
	}
	if !strings.Contains(err.Error(), "targets.dev.tag") {
		t.Fatalf("error %q does not name the field", err)
	}
}

func TestResolveUnsupportedDistro(t *testing.T) {
	doc := strings.Replace(validDoc, "ros2_distro: humble", "ros2_distro: dashing", 1)
	cfg := mustParse(t, doc)

	_, err := cfg.Resolve("dev")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
	if !strings.Contains(err.Error(), "dashing") {
		t.Fatalf("error %q does not name the distro", err)
	}
}

func TestResolveInvalidTier(t *testing.T) {
	doc := strings.Replace(validDoc, "tier: 3", "tier: 4", 1)
	cfg := mustParse(t, doc)

	_, err := cfg.Resolve("dev")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestResolveInvalidKind(t *testing.T) {
	doc := strings.Replace(validDoc, "kind: ros2-develop", "kind: windows-develop", 1)
	cfg := mustParse(t, doc)

	_, err := cfg.Resolve("dev")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestResolveMissingEntryIdentity(t *testing.T) {
	doc := strings.Replace(validDoc, "uid: 1000", "uid: 0", 1)
	cfg := mustParse(t, doc)

	if _, err := cfg.Resolve("dev"); err == nil {
		t.Fatal("uid 0 should not resolve")
	}
}

func TestKindProperties(t *testing.T) {
	cases := []struct {
		kind     Kind
		microROS bool
		deploy   bool
		minTier  Tier
	}{
		{KindROS2Develop, false, false, Tier1},
		{KindROS2Deploy, false, true, Tier1},
		{KindMicroROSDevel, true, false, Tier3},
		{KindMicroROSDeploy, true, true, Tier3},
	}

	for _, tc := range cases {
		if tc.kind.MicroROS() != tc.microROS {
			t.Fatalf("%s: MicroROS = %v", tc.kind, tc.kind.MicroROS())
		}
		if tc.kind.Deploy() != tc.deploy {
			t.Fatalf("%s: Deploy = %v", tc.kind, tc.kind.Deploy())
		}
		if tc.kind.MinTier() != tc.minTier {
			t.Fatalf("%s: MinTier = %d", tc.kind, tc.kind.MinTier())
		}
	}
}
