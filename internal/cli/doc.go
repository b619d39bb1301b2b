// Maps CLI verbs to lifecycle operations for the rosbox tool.
//
// Verbs form a closed set of kong subcommands:
//
//	init     Scaffold a starter environment description.
//	build    Build the image for a target.
//	run      Create or join the container for a target.
//	push     Push a target's image to the registry.
//	clean    Remove every container and image this tool created.
//	config   Print the resolved configuration (engine untouched).
//	status   Report engine state for all targets.
//	version  Show version information.
//
// Running the tool without a verb, or with a verb outside the set, shows
// help and exits successfully. Each verb re-loads and re-validates the
// environment description; nothing is shared between invocations.
package cli
