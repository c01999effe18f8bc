package search

import (
	"context"
	"sync"

	"github.com/charlenopires/dartls-mcp/internal/results"
	"github.com/charlenopires/dartls-mcp/pkg/types"
)

// DeferredLocation is the lightweight reference kept in place of a
// resolved source range, so unselected search results never cost any I/O
type DeferredLocation struct {
	File   string
	Offset int
	Length int
}

// ResolvedLocation is a concrete document and display range, produced by
// resolving a deferred location
type ResolvedLocation struct {
	Document Document
	Range    types.Range
}

// Document is the resolved view of a source file
type Document interface {
	Path() string
	Range(offset, length int) types.Range
}

// DocumentOpener opens source files for location resolution
type DocumentOpener interface {
	Open(ctx context.Context, path string) (Document, error)
}

// OpenerFunc adapts a function to the DocumentOpener interface
type OpenerFunc func(ctx context.Context, path string) (Document, error)

// Open implements DocumentOpener
func (f OpenerFunc) Open(ctx context.Context, path string) (Document, error) {
	return f(ctx, path)
}

// SymbolEntry is a presentable search result. Its identity (name,
// container, kind) is fixed at search time; its location starts deferred
// and transitions to resolved at most once. The transition is monotonic:
// an entry never goes back to the deferred state.
type SymbolEntry struct {
	Name      string
	Container string
	Kind      results.SymbolKind

	mu       sync.Mutex
	deferred *DeferredLocation
	resolved *ResolvedLocation
}

// Deferred returns the entry's deferred location metadata, or false once
// the entry has been resolved or when the entry never carried any
func (e *SymbolEntry) Deferred() (DeferredLocation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deferred == nil {
		return DeferredLocation{}, false
	}
	return *e.deferred, true
}

// Resolved returns the entry's resolved location, or false while the
// entry is still deferred
func (e *SymbolEntry) Resolved() (*ResolvedLocation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.resolved == nil {
		return nil, false
	}
	return e.resolved, true
}
