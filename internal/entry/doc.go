// Package entry models the identity contract between the host and the user
// session inside a container.
//
// Workspace directories are bind-mounted, so the in-container user must
// mirror the host user's UID and GID or every build artifact comes back
// root-owned. The [Config] struct carries that identity explicitly: it is
// filled during config resolution, validated before any engine operation,
// and turned into build arguments and environment variables at the engine
// boundary.
package entry
