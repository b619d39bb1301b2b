// Provides well-known file locations for the rosbox CLI.
//
// The environment description normally lives inside the project being
// containerized (config/env.yaml under the project root), with an XDG
// fallback for user-global defaults. The resolved-parameter snapshot is
// always written next to the description it was derived from.
package paths
