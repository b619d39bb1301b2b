package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/rosbox/rosbox/internal"
	"github.com/rosbox/rosbox/internal/config"
	"github.com/rosbox/rosbox/internal/engine"
	"github.com/rosbox/rosbox/internal/lifecycle"
)

// Represents the root command for the rosbox CLI.
var RootCmd struct {
	Quiet bool   `short:"q" help:"Suppress informational output."`
	Debug bool   `short:"d" help:"Enable debug output."`
	Root  string `short:"C" help:"Project root directory (default: current directory)." placeholder:"DIR"`

	Init    InitCmd    `cmd:"" help:"Scaffold a starter environment description."`
	Build   BuildCmd   `cmd:"" help:"Build the image for a target."`
	Run     RunCmd     `cmd:"" help:"Create or join the container for a target."`
	Push    PushCmd    `cmd:"" help:"Push a target's image to the registry."`
	Clean   CleanCmd   `cmd:"" help:"Remove every container and image this tool created."`
	Config  ConfigCmd  `cmd:"" help:"Print the resolved configuration."`
	Status  StatusCmd  `cmd:"" help:"Report engine state for all targets."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
//
// Invoking the tool without a verb, or with one it does not recognize,
// shows help and succeeds.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	parser, err := kong.New(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Reproducible ROS2 and micro-ROS container environments.\n\n"+
			"Resolves a declarative environment description into image builds and\n"+
			"named, re-joinable containers."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		return err
	}

	args := normalizeArgs(parser, os.Args[1:])

	kongCtx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	configureLogger()

	return kongCtx.Run()
}

// Rewrites the argument list onto kong's --help path where help applies.
//
// A bare invocation, the explicit 'help' verb, and an unrecognized verb all
// show the root help and succeed; 'help <verb>' shows that verb's help.
// Leading flags are scanned past, so 'rosbox -q help' works too.
func normalizeArgs(parser *kong.Kong, args []string) []string {
	i := verbIndex(args)
	if i < 0 {
		return []string{"--help"}
	}

	verb := args[i]
	if verb == "help" {
		rest := append(slices.Clone(args[:i]), args[i+1:]...)
		return append(rest, "--help")
	}
	if !knownVerb(parser, verb) {
		return []string{"--help"}
	}
	return args
}

// Index of the first non-flag argument, or -1 when there is none.
//
// The root flag takes a value, so its argument is skipped along with it.
func verbIndex(args []string) int {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			return i
		}
		if a == "-C" || a == "--root" {
			i++
		}
	}
	return -1
}

// Whether the parser declares a subcommand with the given name.
func knownVerb(parser *kong.Kong, verb string) bool {
	for _, node := range parser.Model.Children {
		if node.Type == kong.CommandNode && node.Name == verb {
			return true
		}
	}
	return false
}

// Adjusts the global log level based on CLI flags and build-time defaults.
func configureLogger() {
	if RootCmd.Debug {
		internal.SetDebug(true)
	}
	if RootCmd.Quiet {
		internal.SetQuiet(true)
	}

	if internal.IsDebug() {
		internal.LogLevel.Set(slog.LevelDebug)
	} else if internal.IsQuiet() {
		internal.LogLevel.Set(slog.LevelWarn)
	}
}

// Maps an error to the process exit code contract.
//
// Config errors, an unreachable engine, and missing-artifact errors each
// get a distinct code so scripts can tell them apart; anything else is a
// generic failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrMalformed),
		errors.Is(err, config.ErrUnknownTarget),
		errors.Is(err, config.ErrTierViolation),
		errors.Is(err, config.ErrUnfilledPlaceholder),
		errors.Is(err, config.ErrUnsupported):
		return 2
	case engine.IsUnavailable(err):
		return 3
	case errors.Is(err, lifecycle.ErrImageMissing),
		errors.Is(err, lifecycle.ErrNotBuilt):
		return 4
	default:
		return 1
	}
}
