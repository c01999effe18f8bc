package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charlenopires/dartls-mcp/internal/results"
	"github.com/charlenopires/dartls-mcp/internal/search"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResolveSymbolTool resolves the concrete source range of a previously
// returned search result
type ResolveSymbolTool struct {
	resolver *search.Resolver
	session  *Session
}

// NewResolveSymbolTool creates a new symbol resolution tool
func NewResolveSymbolTool(resolver *search.Resolver, session *Session) *ResolveSymbolTool {
	return &ResolveSymbolTool{
		resolver: resolver,
		session:  session,
	}
}

// GetTool returns the MCP tool definition
func (t *ResolveSymbolTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolResolveSymbol,
		mcp.WithDescription("Resolve the precise source range of a symbol returned by "+ToolSearchSymbols),
		mcp.WithString("anchor", mcp.Required(), mcp.Description("Anchor of the symbol to resolve, as returned by the search tool")),
	)
	return tool
}

// Handle processes the tool request
func (t *ResolveSymbolTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	anchor := results.SymbolAnchor(mcp.ParseString(req, "anchor", ""))
	if !anchor.IsValid() {
		return mcp.NewToolResultError(fmt.Sprintf("invalid anchor: %s", anchor)), nil
	}

	entry, ok := t.session.Lookup(anchor)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no symbol with anchor %s in the most recent search", anchor)), nil
	}

	location, err := t.resolver.Resolve(ctx, entry)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Symbol location unavailable: %v", err)), nil
	}
	if location == nil {
		return mcp.NewToolResultText("Symbol has no location to resolve"), nil
	}

	result := results.ResolvedSymbolResult{
		Name:      entry.Name,
		Container: entry.Container,
		Kind:      entry.Kind,
		File:      location.Document.Path(),
		Range:     location.Range,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal resolved symbol: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
