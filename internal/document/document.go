package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charlenopires/dartls-mcp/pkg/types"
)

// Document is an opened source file with a prebuilt line index for
// offset-to-position conversion
type Document struct {
	path  string
	index *positionIndex
}

// Path returns the absolute path of the document
func (d *Document) Path() string {
	return d.path
}

// Range converts a byte offset and length into a display range
func (d *Document) Range(offset, length int) types.Range {
	return d.index.rangeAt(offset, length)
}

// Workspace knows the open workspace roots and opens documents by
// absolute path
type Workspace struct {
	roots []string
}

// NewWorkspace creates a workspace over the given root directories
func NewWorkspace(roots ...string) *Workspace {
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		cleaned = append(cleaned, filepath.Clean(root))
	}
	return &Workspace{roots: cleaned}
}

// Roots returns the workspace root directories
func (w *Workspace) Roots() []string {
	return w.roots
}

// FindRoot returns the workspace root containing the given path
func (w *Workspace) FindRoot(path string) (string, bool) {
	path = filepath.Clean(path)
	for _, root := range w.roots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return root, true
		}
	}
	return "", false
}

// Open reads the file at the given path and returns a Document
func (w *Workspace) Open(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}

	return &Document{
		path:  path,
		index: newPositionIndex(string(content)),
	}, nil
}
