package search

import (
	"path/filepath"
	"regexp"
	"strings"
)

// CanonicalPathKind discriminates the outcome of path canonicalization
type CanonicalPathKind string

const (
	PathWorkspaceRelative CanonicalPathKind = "workspace_relative"
	PathPackageReference  CanonicalPathKind = "package_reference"
	PathUnknown           CanonicalPathKind = "unknown"
)

// CanonicalPath is the result of canonicalizing an absolute source path:
// a workspace-relative path, a package: reference, or unknown when the
// file lives outside both conventions. Unknown is a degraded display, not
// an error.
type CanonicalPath struct {
	kind CanonicalPathKind
	path string
}

// Kind returns the kind of the canonical path
func (p CanonicalPath) Kind() CanonicalPathKind {
	return p.kind
}

// Display returns the display path, or false when the path could not be
// placed in either convention
func (p CanonicalPath) Display() (string, bool) {
	if p.kind == PathUnknown {
		return "", false
	}
	return p.path, true
}

// The pub cache stores hosted packages as
// .../hosted/<registry>/<name>-<version>/... and git dependencies as
// .../git/<name>-<revision>/...
var packageCachePattern = regexp.MustCompile(`[/\\](?:hosted[/\\][^/\\]+|git)[/\\]([^/\\]+?)-[^/\\]+[/\\](.+)$`)

// Canonicalizer converts absolute source paths reported by the analysis
// server into human-friendly display paths
type Canonicalizer struct {
	roots []string
}

// NewCanonicalizer creates a canonicalizer over the given workspace roots
func NewCanonicalizer(roots ...string) *Canonicalizer {
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		cleaned = append(cleaned, filepath.Clean(root))
	}
	return &Canonicalizer{roots: cleaned}
}

// Canonicalize converts an absolute path into a display path. Workspace
// membership wins over package-cache recognition.
func (c *Canonicalizer) Canonicalize(absolutePath string) CanonicalPath {
	for _, root := range c.roots {
		if isWithin(root, absolutePath) {
			if rel, err := filepath.Rel(root, filepath.Clean(absolutePath)); err == nil {
				return CanonicalPath{kind: PathWorkspaceRelative, path: rel}
			}
		}
	}

	if matches := packageCachePattern.FindStringSubmatch(absolutePath); matches != nil {
		// The lazy group ends at the first hyphen of the versioned
		// package directory, leaving just the package name.
		name := matches[1]
		rest := matches[2]
		rest = strings.TrimPrefix(rest, "lib/")
		rest = strings.TrimPrefix(rest, `lib\`)
		rest = strings.ReplaceAll(rest, `\`, "/")
		return CanonicalPath{kind: PathPackageReference, path: "package:" + name + "/" + rest}
	}

	return CanonicalPath{kind: PathUnknown}
}

func isWithin(root, path string) bool {
	path = filepath.Clean(path)
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}
