package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rosbox/rosbox/internal/naming"
	"github.com/rosbox/rosbox/internal/paths"
)

// Flattens a resolved target into the KEY=value set consumed by the
// Dockerfiles and the container entrypoint.
//
// The keys are the contract with the shell side of the project; renaming one
// breaks every Dockerfile that references it.
func Snapshot(rt *ResolvedTarget, id naming.Identity) map[string]string {
	image, tag, _ := strings.Cut(id.Image, ":")

	vols := make([]string, 0, len(rt.ExtraVolumes))
	for _, v := range rt.ExtraVolumes {
		vols = append(vols, v.Host+":"+v.Container)
	}

	return map[string]string{
		"REPO_AUTHOR":       rt.Author,
		"PROJECT_REPO":      rt.Workspace,
		"ROS2_DISTRO":       rt.Distro,
		"BASE_IMAGE":        rt.BaseImage,
		"BUILD_STAGE":       rt.BuildStage,
		"TARGET_PLATFORM":   rt.Platform,
		"DOCKERFILE":        rt.Dockerfile,
		"DOCKER_IMAGE":      image,
		"DOCKER_IMAGE_TAG":  tag,
		"DOCKER_CONTAINER":  id.Container,
		"VOLUMES":           strings.Join(vols, ","),
		"CONTAINER_USR":     rt.Entry.User,
		"CONTAINER_PSW":     rt.Entry.Password,
		"CONTAINER_UID":     strconv.Itoa(rt.Entry.UID),
		"CONTAINER_GID":     strconv.Itoa(rt.Entry.GID),
		"CONTAINER_HOME":    rt.Entry.Home,
		"CONTAINER_WS":      rt.Entry.Workspace,
		"CONTAINER_RUN_CMD": rt.Entry.RunCmd,
	}
}

// Writes the snapshot for a resolved target to the given path.
//
// The file is rewritten wholesale on every build and run, mirroring how the
// description itself is re-resolved on every invocation.
func WriteSnapshot(rt *ResolvedTarget, id naming.Identity, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirMode); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := godotenv.Write(Snapshot(rt, id), path); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
