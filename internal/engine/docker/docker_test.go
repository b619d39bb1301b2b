package docker

import (
	"slices"
	"testing"
)

func TestParsePlatform(t *testing.T) {
	p := parsePlatform("linux/arm64")
	if p == nil || p.OS != "linux" || p.Architecture != "arm64" || p.Variant != "" {
		t.Fatalf("parsePlatform(linux/arm64) = %+v", p)
	}

	p = parsePlatform("linux/arm/v7")
	if p == nil || p.OS != "linux" || p.Architecture != "arm" || p.Variant != "v7" {
		t.Fatalf("parsePlatform(linux/arm/v7) = %+v", p)
	}

	if parsePlatform("") != nil {
		t.Fatal("empty platform must map to nil so the daemon picks the default")
	}
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys(map[string]string{"b": "2", "a": "1", "c": "3"})
	if !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Fatalf("keys = %v, want sorted", keys)
	}

	if len(sortedKeys(nil)) != 0 {
		t.Fatal("nil map must produce no keys")
	}
}
