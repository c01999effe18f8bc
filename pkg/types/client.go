package types

import "context"

// Client defines the analysis server client interface
type Client interface {
	Start(ctx context.Context, workspaceRoot string) error
	Stop(ctx context.Context) error

	GetElementDeclarations(ctx context.Context, pattern string, maxResults int) (*DeclarationSet, error)
	Reanalyze(ctx context.Context) error
}
