package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charlenopires/dartls-mcp/internal/results"
	"github.com/charlenopires/dartls-mcp/internal/search"

	"github.com/mark3labs/mcp-go/mcp"
)

// SearchSymbolsTool handles workspace symbol search requests
type SearchSymbolsTool struct {
	provider *search.Provider
	session  *Session
}

// NewSearchSymbolsTool creates a new symbol search tool
func NewSearchSymbolsTool(provider *search.Provider, session *Session) *SearchSymbolsTool {
	return &SearchSymbolsTool{
		provider: provider,
		session:  session,
	}
}

// GetTool returns the MCP tool definition
func (t *SearchSymbolsTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolSearchSymbols,
		mcp.WithDescription("Search the Dart workspace for symbols by name, using in-order case-insensitive fuzzy matching"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Symbol name to search for")),
	)
	return tool
}

// Handle processes the tool request
func (t *SearchSymbolsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := mcp.ParseString(req, "query", "")

	entries := t.provider.Search(ctx, query)
	if entries == nil {
		return mcp.NewToolResultText("No search performed: query is empty"), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No symbols found matching '%s'", query)), nil
	}

	byAnchor := make(map[results.SymbolAnchor]*search.SymbolEntry, len(entries))
	result := results.SymbolSearchResult{
		Query:   query,
		Count:   len(entries),
		Symbols: make([]results.SymbolSearchResultEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		deferred, ok := entry.Deferred()
		if !ok {
			continue
		}
		anchor := results.NewSymbolAnchor(deferred.File, deferred.Offset, deferred.Length)
		byAnchor[anchor] = entry
		result.Symbols = append(result.Symbols, results.SymbolSearchResultEntry{
			Name:      entry.Name,
			Container: entry.Container,
			Kind:      entry.Kind,
			Anchor:    anchor,
		})
	}
	t.session.Replace(byAnchor)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal search results: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
