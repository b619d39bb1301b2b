package lifecycle

import "errors"

var (

	// Run was requested but no image exists for the target. Build and run
	// are separate, explicit transitions; run never builds implicitly.
	ErrImageMissing = errors.New("image missing")

	// Push was requested but the target was never built.
	ErrNotBuilt = errors.New("image not built")
)
