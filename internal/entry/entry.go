package entry

import (
	"fmt"
	"strconv"
)

// Identity and session parameters for the user inside a container.
//
// The in-container entrypoint script consumes these as CONTAINER_* environment
// variables. Here they form an explicit struct, built once during config
// resolution and validated as a discrete step.
type Config struct {
	User      string // Login name inside the container.
	UID       int    // Numeric user ID, must match the host user for bind mounts.
	GID       int    // Numeric group ID.
	Password  string // Password for sudo inside develop containers.
	Home      string // Home directory, derived as /home/<user>.
	Workspace string // Workspace mount point under the home directory.
	RunCmd    string // Command the container runs when attached.
}

// Checks that the identity is complete enough to start a session.
func (c Config) Validate() error {
	if c.User == "" {
		return fmt.Errorf("%w: user", ErrIncomplete)
	}
	if c.UID <= 0 {
		return fmt.Errorf("%w: uid %d", ErrIncomplete, c.UID)
	}
	if c.GID <= 0 {
		return fmt.Errorf("%w: gid %d", ErrIncomplete, c.GID)
	}
	if c.Workspace == "" {
		return fmt.Errorf("%w: workspace", ErrIncomplete)
	}
	if c.RunCmd == "" {
		return fmt.Errorf("%w: run command", ErrIncomplete)
	}
	return nil
}

// Verifies that the observed in-container identity matches the configured one.
//
// This exists for the in-container consumer, not the host-side verbs: the
// entrypoint calls it before handing over the session. A mismatch means the
// image was built for a different user and the session must abort rather
// than write root-owned files into the bind-mounted workspace.
func (c Config) VerifyIdentity(actualUser string, actualUID int) error {
	if actualUser != c.User || actualUID != c.UID {
		return fmt.Errorf("%w: container reports %s (uid %d), config declares %s (uid %d)",
			ErrIdentityMismatch, actualUser, actualUID, c.User, c.UID)
	}
	return nil
}

// Formats the identity as environment variables for container creation.
func (c Config) Environ() []string {
	return []string{
		"LOCAL_USER_ID=" + strconv.Itoa(c.UID),
		"USER=" + c.User,
		"UID=" + strconv.Itoa(c.UID),
		"GROUPS=" + strconv.Itoa(c.GID),
		"CONTAINER_USR=" + c.User,
		"CONTAINER_UID=" + strconv.Itoa(c.UID),
	}
}

// Formats the identity as docker build arguments.
//
// The Dockerfiles create the container user at build time from these values.
func (c Config) BuildArgs() map[string]string {
	return map[string]string{
		"CONTAINER_USR": c.User,
		"CONTAINER_PSW": c.Password,
		"CONTAINER_UID": strconv.Itoa(c.UID),
		"CONTAINER_GID": strconv.Itoa(c.GID),
	}
}
