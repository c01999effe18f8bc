package types

import (
	"context"
	"encoding/json"
)

// Transport defines the transport layer to the analysis server
type Transport interface {
	Start() error
	Stop() error
	SendRequest(ctx context.Context, method string, params any) (json.RawMessage, error)
	OnNotification(handler func(event string, params json.RawMessage))
}
