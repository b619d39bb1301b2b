package config

import (
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/rosbox/rosbox/internal/naming"
)

func TestSnapshot(t *testing.T) {
	cfg := mustParse(t, validDoc)
	rt, err := cfg.Resolve("agent")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	id := naming.Derive(rt.Author, rt.Workspace, rt.Distro, rt.Tag)
	snap := Snapshot(rt, id)

	want := map[string]string{
		"DOCKER_IMAGE":     "acme/ws-humble-image",
		"DOCKER_IMAGE_TAG": "agent",
		"DOCKER_CONTAINER": "acme-agent-container",
		"CONTAINER_USR":    "ros",
		"CONTAINER_UID":    "1000",
		"CONTAINER_WS":     "/home/ros/ws",
		"VOLUMES":          "/data/bags:/bags",
		"TARGET_PLATFORM":  "linux/arm64",
	}
	for k, v := range want {
		if snap[k] != v {
			t.Fatalf("snapshot[%s] = %q, want %q", k, snap[k], v)
		}
	}
}

func TestWriteSnapshotRoundTrip(t *testing.T) {
	cfg := mustParse(t, validDoc)
	rt, err := cfg.Resolve("dev")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	id := naming.Derive(rt.Author, rt.Workspace, rt.Distro, rt.Tag)
	path := filepath.Join(t.TempDir(), "config", ".env")

	if err := WriteSnapshot(rt, id, path); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	loaded, err := godotenv.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	for k, v := range Snapshot(rt, id) {
		if loaded[k] != v {
			t.Fatalf("loaded[%s] = %q, want %q", k, loaded[k], v)
		}
	}
}
