package naming

import "testing"

func TestDerive(t *testing.T) {
	id := Derive("acme", "ws", "humble", "v1")

	if id.Image != "acme/ws-humble-image:v1" {
		t.Fatalf("image = %q, want acme/ws-humble-image:v1", id.Image)
	}
	if id.Container != "acme-v1-container" {
		t.Fatalf("container = %q, want acme-v1-container", id.Container)
	}
}

func TestDeriveDeterministic(t *testing.T) {
	a := Derive("acme", "ws", "humble", "v1")
	b := Derive("acme", "ws", "humble", "v1")

	if a != b {
		t.Fatalf("derive is not deterministic: %v vs %v", a, b)
	}
}

func TestDeriveTrimsWhitespace(t *testing.T) {
	id := Derive(" acme ", "ws", "humble", " v1\n")

	if id.Container != "acme-v1-container" {
		t.Fatalf("container = %q, want acme-v1-container", id.Container)
	}
	if id.Image != "acme/ws-humble-image:v1" {
		t.Fatalf("image = %q, want acme/ws-humble-image:v1", id.Image)
	}
}

func TestDeriveDistinctTags(t *testing.T) {
	a := Derive("acme", "ws", "humble", "v1")
	b := Derive("acme", "ws", "humble", "v2")

	if a.Container == b.Container {
		t.Fatalf("different tags collided on container name %q", a.Container)
	}
	if a.Image == b.Image {
		t.Fatalf("different tags collided on image name %q", a.Image)
	}
}

func TestContainerNameIndependentOfWorkspace(t *testing.T) {
	a := Derive("acme", "ws", "humble", "v1")
	b := Derive("acme", "other", "jazzy", "v1")

	if a.Container != b.Container {
		t.Fatalf("container names differ for same (author, tag): %q vs %q", a.Container, b.Container)
	}
}

func TestRegistryRef(t *testing.T) {
	id := Derive("Acme", "WS", "humble", "V1")

	ref := id.RegistryRef("ghcr.io")
	if ref != "ghcr.io/acme/ws-humble-image:v1" {
		t.Fatalf("ref = %q, want ghcr.io/acme/ws-humble-image:v1", ref)
	}

	if id.RegistryRef("ghcr.io/") != ref {
		t.Fatal("trailing registry slash changed the reference")
	}
}

func TestPatternMatchContainer(t *testing.T) {
	p := OwnedBy("acme")

	matches := []string{
		"acme-v1-container",
		"acme-deploy-container",
	}
	for _, name := range matches {
		if !p.MatchContainer(name) {
			t.Fatalf("MatchContainer(%q) = false, want true", name)
		}
	}

	rejects := []string{
		"acme-container",           // no tag
		"acme-v1",                  // no suffix
		"other-v1-container",       // different author
		"acmeplus-v1-container",    // author is a prefix, not a match
		"prefix-acme-v1-container", // substring, not a structural match
		"",
	}
	for _, name := range rejects {
		if p.MatchContainer(name) {
			t.Fatalf("MatchContainer(%q) = true, want false", name)
		}
	}
}

func TestPatternMatchImage(t *testing.T) {
	p := OwnedBy("acme")

	if !p.MatchImage("acme/ws-humble-image:v1") {
		t.Fatal("derived image reference did not match its own pattern")
	}

	rejects := []string{
		"acme/ws-humble:v1",        // missing structural suffix
		"acme/ws-humble-image",     // no tag
		"other/ws-humble-image:v1", // different author
		"acme-ws-humble-image:v1",  // no repository separator
	}
	for _, ref := range rejects {
		if p.MatchImage(ref) {
			t.Fatalf("MatchImage(%q) = true, want false", ref)
		}
	}
}

func TestPatternEmptyAuthor(t *testing.T) {
	p := OwnedBy("  ")

	if p.MatchContainer("-v1-container") {
		t.Fatal("empty author must never match")
	}
	if p.MatchImage("/ws-humble-image:v1") {
		t.Fatal("empty author must never match")
	}
}
