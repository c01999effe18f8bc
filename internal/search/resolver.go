package search

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"
)

// ResolutionError indicates the backing document for an entry could not
// be opened. The entry itself stays presentable; only its location is
// unavailable.
type ResolutionError struct {
	File string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("symbol location unavailable for %s: %v", e.File, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Resolver resolves the deferred location of a symbol entry on demand,
// when the user commits to a result
type Resolver struct {
	opener DocumentOpener
	group  singleflight.Group
}

// NewResolver creates a new lazy location resolver
func NewResolver(opener DocumentOpener) *Resolver {
	return &Resolver{opener: opener}
}

// Resolve transitions an entry from deferred to resolved location state.
// Resolving an already-resolved entry returns the cached location without
// redoing the I/O. An entry with no deferred metadata was not produced by
// a search here; it resolves to nil rather than an error, so foreign
// entries can be routed through the same hook. Concurrent resolutions of
// entries in the same file share a single document open.
func (r *Resolver) Resolve(ctx context.Context, entry *SymbolEntry) (*ResolvedLocation, error) {
	entry.mu.Lock()
	if entry.resolved != nil {
		resolved := entry.resolved
		entry.mu.Unlock()
		return resolved, nil
	}
	deferred := entry.deferred
	entry.mu.Unlock()

	if deferred == nil {
		return nil, nil
	}

	v, err, shared := r.group.Do(deferred.File, func() (any, error) {
		return r.opener.Open(ctx, deferred.File)
	})
	if err != nil {
		return nil, &ResolutionError{File: deferred.File, Err: err}
	}
	doc := v.(Document)
	slog.Debug("Opened document for resolution", "file", deferred.File, "shared", shared)

	// Never attach a torn location after cancellation
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.resolved == nil {
		entry.resolved = &ResolvedLocation{
			Document: doc,
			Range:    doc.Range(deferred.Offset, deferred.Length),
		}
		entry.deferred = nil
	}
	return entry.resolved, nil
}
