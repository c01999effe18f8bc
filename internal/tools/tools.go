package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "dart."

// Tool names
const (
	ToolSearchSymbols = ToolPrefix + "search_symbols"
	ToolResolveSymbol = ToolPrefix + "resolve_symbol"
)
