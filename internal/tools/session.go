package tools

import (
	"sync"

	"github.com/charlenopires/dartls-mcp/internal/results"
	"github.com/charlenopires/dartls-mcp/internal/search"
)

// Session holds the entries of the most recent search, keyed by anchor,
// so a later resolve call finds the exact entry it was shown. Each search
// replaces the set; entries are never shared across searches.
type Session struct {
	mu      sync.Mutex
	entries map[results.SymbolAnchor]*search.SymbolEntry
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{
		entries: make(map[results.SymbolAnchor]*search.SymbolEntry),
	}
}

// Replace swaps in the entries of a fresh search
func (s *Session) Replace(entries map[results.SymbolAnchor]*search.SymbolEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

// Lookup finds an entry from the most recent search by its anchor
func (s *Session) Lookup(anchor results.SymbolAnchor) (*search.SymbolEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[anchor]
	return entry, ok
}
