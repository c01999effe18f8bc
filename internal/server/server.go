package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charlenopires/dartls-mcp/internal/analysis"
	"github.com/charlenopires/dartls-mcp/internal/document"
	"github.com/charlenopires/dartls-mcp/internal/search"
	"github.com/charlenopires/dartls-mcp/internal/tools"
	"github.com/charlenopires/dartls-mcp/internal/watcher"
	"github.com/charlenopires/dartls-mcp/pkg/project"
	"github.com/charlenopires/dartls-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &DartServer{}

// DartServer represents the Dart symbol search MCP server
type DartServer struct {
	mcpServer      *server.MCPServer
	analysisClient *analysis.AnalysisClient
	watcher        *watcher.Watcher
	config         *types.Config
}

// NewDartServer creates a new Dart MCP server
func NewDartServer(config *types.Config) *DartServer {
	return &DartServer{
		mcpServer:      server.NewMCPServer(project.Name, project.Version),
		analysisClient: analysis.NewAnalysisClient(config.DartPath),
		config:         config,
	}
}

// Start starts the analysis server, the workspace watcher, and the MCP
// server. Blocks until the MCP stdio session ends.
func (s *DartServer) Start(ctx context.Context) error {
	slog.Info("Starting Dart MCP server", "workspace_root", s.config.WorkspaceRoot)

	if err := s.analysisClient.Start(ctx, s.config.WorkspaceRoot); err != nil {
		return fmt.Errorf("failed to start analysis client: %w", err)
	}

	w, err := watcher.New(s.analysisClient, s.config.WorkspaceRoot)
	if err != nil {
		return fmt.Errorf("failed to create workspace watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to start workspace watcher: %w", err)
	}
	s.watcher = w

	s.registerTools()

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *DartServer) registerTools() {
	workspace := document.NewWorkspace(s.config.WorkspaceRoot)
	provider := search.NewProvider(s.analysisClient, search.NewCanonicalizer(workspace.Roots()...))
	resolver := search.NewResolver(search.OpenerFunc(func(ctx context.Context, path string) (search.Document, error) {
		return workspace.Open(ctx, path)
	}))
	session := tools.NewSession()

	searchTool := tools.NewSearchSymbolsTool(provider, session)
	s.mcpServer.AddTool(searchTool.GetTool(), searchTool.Handle)

	resolveTool := tools.NewResolveSymbolTool(resolver, session)
	s.mcpServer.AddTool(resolveTool.GetTool(), resolveTool.Handle)
}

// Shutdown gracefully shuts down the server
func (s *DartServer) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			slog.Warn("Failed to stop workspace watcher", "error", err)
		}
	}

	if err := s.analysisClient.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop analysis client: %w", err)
	}

	return nil
}
