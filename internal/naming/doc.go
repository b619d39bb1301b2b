// Package naming derives deterministic image and container names.
//
// Every name this tool gives to an engine object flows through here, and the
// functions are pure: no engine queries, no environment reads. Stability of
// the derivation is what makes run idempotent: two terminals resolving the
// same target compute the same container name and converge on one container.
package naming
