package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charlenopires/dartls-mcp/pkg/types"
)

var _ types.Transport = &AnalyzerTransport{}

const requestTimeout = 30 * time.Second

// AnalyzerTransport handles the low-level communication with the Dart
// analysis server. Unlike LSP, the analyzer protocol frames one JSON
// object per line on stdout, request ids are strings, and server-initiated
// messages carry an "event" field instead of an id.
type AnalyzerTransport struct {
	stdin     io.WriteCloser
	stdout    io.ReadCloser
	requestID int64
	responses map[string]chan serverResponse
	onNotify  func(event string, params json.RawMessage)
	writeMu   sync.Mutex
	mu        sync.RWMutex
	done      chan struct{}
	closeOnce sync.Once
}

// NewAnalyzerTransport creates a new transport over the analysis server's
// stdio pipes
func NewAnalyzerTransport(stdin io.WriteCloser, stdout io.ReadCloser) *AnalyzerTransport {
	return &AnalyzerTransport{
		stdin:     stdin,
		stdout:    stdout,
		responses: make(map[string]chan serverResponse),
		done:      make(chan struct{}),
	}
}

// OnNotification registers a handler for server notifications. Must be
// called before Start.
func (t *AnalyzerTransport) OnNotification(handler func(event string, params json.RawMessage)) {
	t.onNotify = handler
}

// Start starts reading messages from the analysis server
func (t *AnalyzerTransport) Start() error {
	go t.readMessages()
	return nil
}

// Stop closes the transport
func (t *AnalyzerTransport) Stop() error {
	t.closeOnce.Do(func() {
		close(t.done)
	})
	if t.stdin != nil {
		return t.stdin.Close()
	}
	return nil
}

type serverError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *serverError) Error() string {
	return fmt.Sprintf("analysis server error %s: %s", e.Code, e.Message)
}

// serverMessage is any single line sent by the analysis server: a response
// (has an id), or a notification (has an event).
type serverMessage struct {
	ID     string          `json:"id,omitempty"`
	Event  string          `json:"event,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Error  *serverError    `json:"error,omitempty"`
}

type serverResponse struct {
	result json.RawMessage
	err    error
}

// readMessages reads newline-delimited JSON messages from stdout
func (t *AnalyzerTransport) readMessages() {
	scanner := bufio.NewScanner(t.stdout)
	// Declaration searches over a large workspace can produce multi-MB
	// response lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		select {
		case <-t.done:
			return
		default:
		}
		t.handleMessage(scanner.Bytes())
	}
}

// handleMessage dispatches a single message to the waiting request or the
// notification handler
func (t *AnalyzerTransport) handleMessage(line []byte) {
	var msg serverMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		// The server prints diagnostics to stdout before the protocol
		// starts; skip anything that is not a JSON message.
		return
	}

	if msg.Event != "" {
		if t.onNotify != nil {
			t.onNotify(msg.Event, msg.Params)
		}
		return
	}

	if msg.ID == "" {
		return
	}

	t.mu.RLock()
	ch, ok := t.responses[msg.ID]
	t.mu.RUnlock()

	if ok {
		if msg.Error != nil {
			ch <- serverResponse{err: msg.Error}
		} else {
			ch <- serverResponse{result: msg.Result}
		}
	}
}

// SendRequest sends a request and waits for the matching response. A
// cancelled context abandons the wait and returns the context's error.
func (t *AnalyzerTransport) SendRequest(ctx context.Context, method string, params any) (json.RawMessage, error) {
	id := strconv.FormatInt(atomic.AddInt64(&t.requestID, 1), 10)

	request := map[string]any{
		"id":     id,
		"method": method,
	}
	if params != nil {
		request["params"] = params
	}

	data, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	ch := make(chan serverResponse, 1)
	t.mu.Lock()
	t.responses[id] = ch
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		delete(t.responses, id)
		t.mu.Unlock()
	}()

	if err := t.writeLine(data); err != nil {
		return nil, err
	}

	select {
	case resp := <-ch:
		return resp.result, resp.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.done:
		return nil, fmt.Errorf("transport closed while waiting for response to method %s", method)
	case <-time.After(requestTimeout):
		return nil, fmt.Errorf("timeout waiting for response to method %s", method)
	}
}

// writeLine writes a message followed by a newline
func (t *AnalyzerTransport) writeLine(data []byte) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if _, err := t.stdin.Write(data); err != nil {
		return fmt.Errorf("failed to write request: %w", err)
	}
	if _, err := t.stdin.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write request terminator: %w", err)
	}
	return nil
}
