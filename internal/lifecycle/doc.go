// Package lifecycle realizes CLI verbs as deterministic state transitions.
//
// Each operation observes the engine's current state through the capability
// interface, decides a single transition, and executes it. Nothing is
// cached between invocations; the container engine is the only source of
// truth and also the arbiter of name uniqueness, which is what makes run
// safe to invoke concurrently from multiple terminals: whoever loses the
// create race simply joins the winner's container.
//
// Build and run are deliberately never chained. Run fails fast when the
// image is absent so users always know which command produced which
// artifact.
package lifecycle
