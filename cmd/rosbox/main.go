package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rosbox/rosbox/internal"
	"github.com/rosbox/rosbox/internal/cli"
)

// The entry point for the rosbox CLI.
//
// Initializes logging, logs startup information, and executes the root
// command. If any error occurs during execution, it exits with a non-zero
// code.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("rosbox is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(cli.ExitCode(err))
	}
}

// Creates a tinted logger seeded from build-time linker flags.
//
// The level is held in a shared [slog.LevelVar] so the CLI layer can adjust
// it after flag parsing.
func logger() *slog.Logger {
	internal.LogLevel.Set(defaultLevel())

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      internal.LogLevel,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty(os.Stderr),
	})

	return slog.New(handler).WithGroup(internal.Name)
}

// Returns the log level derived from build-time linker flags.
func defaultLevel() slog.Level {
	if internal.IsDebug() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Whether the given file is an interactive terminal.
func isatty(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
