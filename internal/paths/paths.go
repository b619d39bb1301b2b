package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name of the environment description inside the config directory.
	configFile = "env.yaml"

	// Name of the generated resolved-parameter snapshot.
	snapshotFile = ".env"

	// Subdirectory of a project root holding the environment description.
	configDir = "config"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the environment description for a project root.
//
// When root is empty the current directory is used. A project-local
// config/env.yaml takes precedence; when it does not exist the per-user
// XDG location is returned instead:
//
//	Linux:   ~/.config/rosbox/env.yaml
//	macOS:   ~/Library/Application Support/rosbox/env.yaml
func ConfigFile(root string) string {
	local := filepath.Join(rootDir(root), configDir, configFile)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	if fallback, err := xdg.SearchConfigFile(filepath.Join("rosbox", configFile)); err == nil {
		return fallback
	}
	return local
}

// Path where the environment description is created by 'rosbox init'.
//
// Always project-local; init scaffolds the config directory if needed.
func InitConfigFile(root string) string {
	return filepath.Join(rootDir(root), configDir, configFile)
}

// Path to the resolved-parameter snapshot written next to the config.
//
// The snapshot is a flat KEY=value file consumed by the Dockerfile and
// entrypoint plumbing.
func SnapshotFile(root string) string {
	return filepath.Join(rootDir(root), configDir, snapshotFile)
}

// Path to the docker build context for a project root.
func BuildContext(root string) string {
	return rootDir(root)
}

// Path to a Dockerfile inside the project's docker directory.
func Dockerfile(root, name string) string {
	return filepath.Join(rootDir(root), "docker", name)
}

// Returns the root directory, defaulting to the current directory.
func rootDir(root string) string {
	if root == "" {
		return "."
	}
	return root
}
