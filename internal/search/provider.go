package search

import (
	"context"
	"log/slog"

	"github.com/charlenopires/dartls-mcp/internal/results"
	"github.com/charlenopires/dartls-mcp/pkg/types"
)

// maxSearchResults caps how many declarations a single search may return
const maxSearchResults = 500

// DeclarationSearcher is the boundary to the backing declaration index
type DeclarationSearcher interface {
	GetElementDeclarations(ctx context.Context, pattern string, maxResults int) (*types.DeclarationSet, error)
}

// Provider turns free-text queries into presentable symbol entries with
// deferred locations
type Provider struct {
	searcher DeclarationSearcher
	canon    *Canonicalizer
}

// NewProvider creates a new symbol search provider
func NewProvider(searcher DeclarationSearcher, canon *Canonicalizer) *Provider {
	return &Provider{
		searcher: searcher,
		canon:    canon,
	}
}

// Search queries the declaration index and synthesizes symbol entries,
// preserving the index's own ranking order. An empty query returns nil
// without consulting the index; that is a distinct signal from the
// non-nil empty list returned when the search ran and found nothing.
// Index failure and cancellation also surface as an empty list: a search
// must never take the host session down.
func (p *Provider) Search(ctx context.Context, query string) []*SymbolEntry {
	if query == "" {
		return nil
	}

	pattern := SynthesizePattern(query)
	slog.Debug("Searching workspace symbols", "query", query, "pattern", pattern)

	set, err := p.searcher.GetElementDeclarations(ctx, pattern, maxSearchResults)
	if err != nil {
		if ctx.Err() != nil {
			slog.Debug("Symbol search cancelled", "query", query)
		} else {
			slog.Warn("Symbol search failed", "query", query, "error", err)
		}
		return []*SymbolEntry{}
	}
	if err := ctx.Err(); err != nil {
		slog.Debug("Symbol search cancelled before synthesis", "query", query)
		return []*SymbolEntry{}
	}

	entries := make([]*SymbolEntry, 0, len(set.Declarations))
	for _, decl := range set.Declarations {
		entries = append(entries, p.newEntry(decl, set.File(decl)))
	}

	slog.Debug("Synthesized symbol entries", "count", len(entries), "query", query)
	return entries
}

// newEntry builds a presentable entry from a raw declaration. The precise
// source range is intentionally left deferred; most search results are
// never opened.
func (p *Provider) newEntry(decl types.Declaration, file string) *SymbolEntry {
	name := decl.Name
	classFolded := false

	if decl.Kind == "CONSTRUCTOR" {
		if name == "" {
			name = decl.ClassName
		} else {
			name = decl.ClassName + "." + name
		}
		classFolded = true
	}

	// A setter's synthetic (value) signature is not informative
	if decl.Parameters != "" && decl.Kind != "SETTER" {
		name += decl.Parameters
	}

	owner := decl.ClassName
	if owner == "" {
		owner = decl.MixinName
	}
	if owner != "" && !classFolded {
		name = owner + "." + name
	}

	container, _ := p.canon.Canonicalize(file).Display()

	return &SymbolEntry{
		Name:      name,
		Container: container,
		Kind:      results.NewSymbolKind(decl.Kind),
		deferred: &DeferredLocation{
			File:   file,
			Offset: decl.CodeOffset,
			Length: decl.CodeLength,
		},
	}
}
