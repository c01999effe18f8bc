package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"github.com/charlenopires/dartls-mcp/internal/transport"
	"github.com/charlenopires/dartls-mcp/pkg/types"
)

const (
	defaultDartPath = "dart"
	connectTimeout  = 30 * time.Second
)

var _ types.Client = &AnalysisClient{}

// AnalysisClient implements the Client interface for the Dart analysis
// server, spawned as "dart language-server --protocol=analyzer"
type AnalysisClient struct {
	dartPath  string
	cmd       *exec.Cmd
	stderr    io.ReadCloser
	transport types.Transport
	connected chan struct{}
}

// NewAnalysisClient creates a new analysis server client
func NewAnalysisClient(dartPath string) *AnalysisClient {
	if dartPath == "" {
		dartPath = defaultDartPath
	}

	slog.Debug("Creating new analysis client", "dart_path", dartPath)

	return &AnalysisClient{
		dartPath:  dartPath,
		connected: make(chan struct{}),
	}
}

// Start starts the analysis server process and points it at the workspace
func (c *AnalysisClient) Start(ctx context.Context, workspaceRoot string) error {
	slog.Debug("Starting analysis client", "dart_path", c.dartPath, "workspace_root", workspaceRoot)

	c.cmd = exec.CommandContext(ctx, c.dartPath, "language-server", "--protocol=analyzer")

	stdin, err := c.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdin pipe: %w", err)
	}

	stdout, err := c.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderr, err := c.cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	c.stderr = stderr
	tr := transport.NewAnalyzerTransport(stdin, stdout)
	tr.OnNotification(c.handleNotification)
	c.transport = tr

	if err := c.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start analysis server: %w", err)
	}
	slog.Debug("Analysis server process started", "pid", c.cmd.Process.Pid)

	if err := c.transport.Start(); err != nil {
		return fmt.Errorf("failed to start transport: %w", err)
	}

	if err := c.awaitConnected(ctx); err != nil {
		return err
	}
	slog.Debug("Analysis server connected")

	params := map[string]any{
		"included": []string{workspaceRoot},
		"excluded": []string{},
	}
	if _, err := c.transport.SendRequest(ctx, "analysis.setAnalysisRoots", params); err != nil {
		return fmt.Errorf("failed to set analysis roots: %w", err)
	}
	slog.Debug("Analysis roots set", "workspace_root", workspaceRoot)

	return nil
}

// awaitConnected waits for the server.connected notification
func (c *AnalysisClient) awaitConnected(ctx context.Context) error {
	select {
	case <-c.connected:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("cancelled waiting for analysis server: %w", ctx.Err())
	case <-time.After(connectTimeout):
		return fmt.Errorf("timeout waiting for analysis server to connect")
	}
}

func (c *AnalysisClient) handleNotification(event string, params json.RawMessage) {
	switch event {
	case "server.connected":
		var info struct {
			Version string `json:"version"`
		}
		if err := json.Unmarshal(params, &info); err == nil {
			slog.Debug("Analysis server version", "version", info.Version)
		}
		select {
		case <-c.connected:
		default:
			close(c.connected)
		}
	case "server.error":
		var serverErr struct {
			Message string `json:"message"`
			IsFatal bool   `json:"isFatal"`
		}
		if err := json.Unmarshal(params, &serverErr); err == nil {
			slog.Warn("Analysis server reported an error", "message", serverErr.Message, "fatal", serverErr.IsFatal)
		}
	default:
		slog.Debug("Ignoring analysis server notification", "event", event)
	}
}

// Stop shuts down the analysis server
func (c *AnalysisClient) Stop(ctx context.Context) error {
	if _, err := c.transport.SendRequest(ctx, "server.shutdown", nil); err != nil {
		slog.Warn("Analysis server shutdown request failed", "error", err)
	}

	if err := c.transport.Stop(); err != nil {
		return fmt.Errorf("failed to stop transport: %w", err)
	}

	if c.cmd != nil && c.cmd.Process != nil {
		if err := c.cmd.Process.Kill(); err != nil {
			return fmt.Errorf("failed to kill analysis server process: %w", err)
		}
		if _, err := c.cmd.Process.Wait(); err != nil {
			return fmt.Errorf("failed to wait for analysis server process: %w", err)
		}
	}

	return nil
}

// GetElementDeclarations searches the server's declaration index with a
// fuzzy pattern. The server's own ranking order is passed through
// unchanged.
func (c *AnalysisClient) GetElementDeclarations(ctx context.Context, pattern string, maxResults int) (*types.DeclarationSet, error) {
	slog.Debug("Searching element declarations", "pattern", pattern, "max_results", maxResults)

	params := map[string]any{
		"pattern":    pattern,
		"maxResults": maxResults,
	}

	response, err := c.transport.SendRequest(ctx, "search.getElementDeclarations", params)
	if err != nil {
		return nil, fmt.Errorf("failed to get element declarations: %w", err)
	}

	var set types.DeclarationSet
	if err := json.Unmarshal(response, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal declarations response: %w", err)
	}

	slog.Debug("Found element declarations", "count", len(set.Declarations), "file_count", len(set.Files))
	return &set, nil
}

// Reanalyze asks the server to re-read the workspace from disk
func (c *AnalysisClient) Reanalyze(ctx context.Context) error {
	if _, err := c.transport.SendRequest(ctx, "analysis.reanalyze", nil); err != nil {
		return fmt.Errorf("failed to reanalyze: %w", err)
	}
	return nil
}
