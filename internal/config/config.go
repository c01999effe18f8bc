package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charlenopires/dartls-mcp/pkg/types"

	"github.com/pelletier/go-toml/v2"
)

// Default returns the default configuration
func Default() *types.Config {
	return &types.Config{
		DartPath:      "dart",
		WorkspaceRoot: ".",
		LogLevel:      "info",
	}
}

// Load reads a TOML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*types.Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// ParseLogLevel converts a config log level string to a slog level,
// falling back to info for unknown values
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
