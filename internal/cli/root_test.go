package cli

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/rosbox/rosbox/internal/config"
	"github.com/rosbox/rosbox/internal/engine"
	"github.com/rosbox/rosbox/internal/lifecycle"
)

func testParser(t *testing.T) *kong.Kong {
	t.Helper()
	parser, err := kong.New(&RootCmd)
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	return parser
}

func TestNormalizeArgs(t *testing.T) {
	parser := testParser(t)

	cases := []struct {
		name string
		args []string
		want []string
	}{
		{"bare", nil, []string{"--help"}},
		{"help verb", []string{"help"}, []string{"--help"}},
		{"help for verb", []string{"help", "run"}, []string{"run", "--help"}},
		{"help behind flag", []string{"-q", "help"}, []string{"-q", "--help"}},
		{"help behind root flag", []string{"-C", "dir", "help"}, []string{"-C", "dir", "--help"}},
		{"unknown verb", []string{"frobnicate"}, []string{"--help"}},
		{"unknown verb behind flag", []string{"-d", "frobnicate"}, []string{"--help"}},
		{"only flags", []string{"-q"}, []string{"--help"}},
		{"known verb untouched", []string{"build", "dev"}, []string{"build", "dev"}},
		{"known verb behind flag untouched", []string{"-q", "run", "dev"}, []string{"-q", "run", "dev"}},
	}

	for _, tc := range cases {
		if got := normalizeArgs(parser, tc.args); !slices.Equal(got, tc.want) {
			t.Fatalf("%s: normalizeArgs(%v) = %v, want %v", tc.name, tc.args, got, tc.want)
		}
	}
}

func TestNormalizeArgsRoutesToHelp(t *testing.T) {
	parser := testParser(t)

	// An unrecognized verb must end up on the help path, never on a parse
	// error.
	for _, args := range [][]string{nil, {"help"}, {"help", "run"}, {"frobnicate"}} {
		normalized := normalizeArgs(parser, args)
		if !slices.Contains(normalized, "--help") {
			t.Fatalf("normalizeArgs(%v) = %v, want a help invocation", args, normalized)
		}
	}
}

func TestKnownVerb(t *testing.T) {
	parser := testParser(t)

	for _, verb := range []string{"init", "build", "run", "push", "clean", "config", "status", "version"} {
		if !knownVerb(parser, verb) {
			t.Fatalf("knownVerb(%q) = false, want true", verb)
		}
	}
	if knownVerb(parser, "frobnicate") {
		t.Fatal("knownVerb accepted an undeclared verb")
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("something else"), 1},
		{fmt.Errorf("%w: field", config.ErrUnfilledPlaceholder), 2},
		{fmt.Errorf("%w: target %q", config.ErrUnknownTarget, "x"), 2},
		{fmt.Errorf("%w: extra volumes", config.ErrTierViolation), 2},
		{fmt.Errorf("%w: bad yaml", config.ErrMalformed), 2},
		{fmt.Errorf("%w: distro", config.ErrUnsupported), 2},
		{fmt.Errorf("%w: ping", engine.ErrUnavailable), 3},
		{fmt.Errorf("%w: img", lifecycle.ErrImageMissing), 4},
		{fmt.Errorf("%w: img", lifecycle.ErrNotBuilt), 4},
	}

	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
