package results

import "github.com/charlenopires/dartls-mcp/pkg/types"

// SymbolSearchResult represents the JSON structure for symbol search results
type SymbolSearchResult struct {
	Query   string                    `json:"query"`
	Count   int                       `json:"count"`
	Symbols []SymbolSearchResultEntry `json:"symbols"`
}

// SymbolSearchResultEntry represents a single symbol in the search results.
// Location metadata is carried as an unresolved anchor; the precise range
// is only computed when the symbol is resolved.
type SymbolSearchResultEntry struct {
	Name      string       `json:"name"`
	Container string       `json:"container,omitempty"`
	Kind      SymbolKind   `json:"kind"`
	Anchor    SymbolAnchor `json:"anchor"`
}

// ResolvedSymbolResult represents the JSON structure for a resolved
// symbol location
type ResolvedSymbolResult struct {
	Name      string      `json:"name"`
	Container string      `json:"container,omitempty"`
	Kind      SymbolKind  `json:"kind"`
	File      string      `json:"file"`
	Range     types.Range `json:"range"`
}
