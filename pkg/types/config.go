package types

// Config represents the configuration for the dartls-mcp server
type Config struct {
	DartPath      string `toml:"dart_path" json:"dart_path,omitempty"`
	WorkspaceRoot string `toml:"workspace_root" json:"workspace_root"`
	LogLevel      string `toml:"log_level" json:"log_level,omitempty"`
}
