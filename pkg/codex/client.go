package codex

import (
	"context"
	"sync"

	"github.com/autocodex/codex/pkg/codex/adapters/cli"
	"github.com/autocodex/codex/pkg/codex/auth"
	"github.com/autocodex/codex/pkg/codex/options"
	"github.com/autocodex/codex/pkg/codex/ports"
	"github.com/autocodex/codex/pkg/codexerrs"
)

// Client adapts a session provider to the legacy message-shaped API.
// It holds at most one active session at a time; a new Query closes
// the previous session first.
type Client struct {
	provider ports.Provider

	mu        sync.Mutex
	sessionID string
}

// NewClient creates a client backed by the CLI adapter. Credential
// resolution failures from auth.RequireToken are the caller's concern;
// use NewClientWithAuth to fail fast at construction time.
func NewClient(opts *options.Options) *Client {
	return NewClientWithProvider(cli.NewAdapter(opts))
}

// NewClientWithAuth creates a CLI-backed client after resolving the
// credential, returning a classified auth error when none is usable.
func NewClientWithAuth(opts *options.Options) (*Client, error) {
	if _, err := auth.RequireToken(); err != nil {
		return nil, err
	}

	return NewClient(opts), nil
}

// NewClientWithProvider creates a client over any session provider.
func NewClientWithProvider(provider ports.Provider) *Client {
	return &Client{provider: provider}
}

// IsAvailable reports whether the backing provider can serve queries.
func (c *Client) IsAvailable() bool {
	return c.provider.IsAvailable()
}

// Query starts a new session seeded with prompt, closing any session
// still active from a previous query.
func (c *Client) Query(
	ctx context.Context,
	prompt string,
	opts ...ports.StartOption,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID != "" {
		_ = c.provider.Close(c.sessionID)
		c.sessionID = ""
	}

	sessionID, err := c.provider.StartSession(ctx, prompt, opts...)
	if err != nil {
		return err
	}

	c.sessionID = sessionID

	return nil
}

// ReceiveResponse streams the active session as legacy messages. The
// session is closed once the stream ends; events that carry no message
// content (the start/end envelope, empty text) are skipped.
func (c *Client) ReceiveResponse(
	ctx context.Context,
) (<-chan Message, error) {
	c.mu.Lock()
	sessionID := c.sessionID
	c.mu.Unlock()

	if sessionID == "" {
		return nil, codexerrs.NewBaseError(
			codexerrs.CategorySession,
			codexerrs.ErrCodeSessionClosed,
			"no active session: call Query first",
			nil,
		)
	}

	eventCh, err := c.provider.StreamEvents(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make(chan Message, 16)

	go func() {
		defer close(out)

		for event := range eventCh {
			message, ok := eventToMessage(event)
			if !ok {
				continue
			}

			select {
			case out <- message:
			case <-ctx.Done():
				return
			}
		}

		c.mu.Lock()
		if c.sessionID == sessionID {
			c.sessionID = ""
		}
		c.mu.Unlock()

		_ = c.provider.Close(sessionID)
	}()

	return out, nil
}

// Close tears down any active session. It is safe to call repeatedly.
func (c *Client) Close() error {
	c.mu.Lock()
	sessionID := c.sessionID
	c.sessionID = ""
	c.mu.Unlock()

	if sessionID == "" {
		return nil
	}

	return c.provider.Close(sessionID)
}
