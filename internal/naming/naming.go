package naming

import (
	"fmt"
	"strings"
)

// Structural suffix shared by every container this tool creates.
const containerSuffix = "-container"

// Structural suffix embedded in every image repository this tool builds.
const imageSuffix = "-image"

// The deterministic image and container names for a resolved target.
//
// Derivation is pure string composition over trimmed inputs, so the same
// config always yields byte-identical names. Container names depend only on
// the author and tag, never on the target kind; repeated invocations from
// any terminal therefore converge on the same container.
type Identity struct {
	Image     string // Image reference, "<author>/<workspace>-<distro>-image:<tag>".
	Container string // Container name, "<author>-<tag>-container".
}

// Derives the identity for the given naming fields.
func Derive(author, workspace, distro, tag string) Identity {
	author = strings.TrimSpace(author)
	workspace = strings.TrimSpace(workspace)
	distro = strings.TrimSpace(distro)
	tag = strings.TrimSpace(tag)

	return Identity{
		Image:     fmt.Sprintf("%s/%s-%s%s:%s", author, workspace, distro, imageSuffix, tag),
		Container: fmt.Sprintf("%s-%s%s", author, tag, containerSuffix),
	}
}

// Returns the registry reference for pushing the image.
//
// Registries such as ghcr.io require lowercase repository paths, so the
// whole reference is lowercased.
func (id Identity) RegistryRef(registry string) string {
	return strings.ToLower(strings.TrimSuffix(registry, "/") + "/" + id.Image)
}

// Identifies containers and images belonging to one author's environments.
//
// Matching is structural, not substring-based: a candidate must carry the
// exact author prefix and the tool's suffix to match. Clean relies on this
// to never touch unrelated objects that merely share a fragment of a name.
type Pattern struct {
	author string
}

// Returns the ownership pattern for an author.
func OwnedBy(author string) Pattern {
	return Pattern{author: strings.TrimSpace(author)}
}

// Whether the given container name was derived by this tool for the author.
func (p Pattern) MatchContainer(name string) bool {
	if p.author == "" {
		return false
	}
	rest, ok := strings.CutPrefix(name, p.author+"-")
	if !ok {
		return false
	}
	tag, ok := strings.CutSuffix(rest, containerSuffix)
	return ok && tag != ""
}

// Whether the given image reference was derived by this tool for the author.
func (p Pattern) MatchImage(ref string) bool {
	if p.author == "" {
		return false
	}
	rest, ok := strings.CutPrefix(ref, p.author+"/")
	if !ok {
		return false
	}
	repo, tag, ok := strings.Cut(rest, ":")
	return ok && tag != "" && strings.HasSuffix(repo, imageSuffix)
}
