// Package engine defines the capability boundary to the container runtime.
//
// The lifecycle controller never talks to an engine directly; it consumes
// the [Engine] interface, which carries exactly the primitives this tool
// needs: three read-only queries plus build, create, start, attach, push,
// and remove. Keeping the surface this narrow lets tests substitute a fake
// and keeps the controller ignorant of which engine is underneath.
//
// The docker subpackage provides the production implementation.
package engine
