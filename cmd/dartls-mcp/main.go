package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charlenopires/dartls-mcp/internal/config"
	"github.com/charlenopires/dartls-mcp/internal/server"
)

func main() {
	var (
		configPath    = flag.String("config", "", "Path to a TOML config file")
		dartPath      = flag.String("dart-path", "", "Path to the dart binary")
		workspaceRoot = flag.String("workspace-root", "", "Root directory of the Dart workspace")
		logLevel      = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override the config file
	if *dartPath != "" {
		cfg.DartPath = *dartPath
	}
	if *workspaceRoot != "" {
		cfg.WorkspaceRoot = *workspaceRoot
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))

	// Validate workspace root
	if stat, err := os.Stat(cfg.WorkspaceRoot); err != nil || !stat.IsDir() {
		log.Fatalf("Invalid workspace root: %s", cfg.WorkspaceRoot)
	}

	// Convert to absolute path
	if absPath, err := filepath.Abs(cfg.WorkspaceRoot); err == nil {
		cfg.WorkspaceRoot = absPath
	}

	ctx := context.Background()
	dartServer := server.NewDartServer(cfg)

	// Start blocks until the stdio session ends
	if err := dartServer.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	if err := dartServer.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
}
