// Package ports defines interfaces that the domain needs from
// infrastructure. These are "ports" in hexagonal architecture -
// contracts defined by domain needs, not by external systems.
package ports

import (
	"context"

	"github.com/autocodex/codex/pkg/codex/events"
)

// Provider defines what the domain needs from a session backend.
// Each session wraps one external agent process; a provider may hold
// many concurrent sessions, each independently owned.
type Provider interface {
	// StartSession spawns a new agent process seeded with prompt and
	// returns its session identifier. The session is recorded as open
	// before the call returns.
	StartSession(ctx context.Context, prompt string, opts ...StartOption) (string, error)

	// Send writes a message to the session's stdin.
	Send(ctx context.Context, sessionID, message string) error

	// StreamEvents returns the session's event stream. The stream is
	// lazy, single-consumer, and not restartable: it always begins
	// with a session_start event and ends with a session_end event,
	// regardless of how the process terminated.
	StreamEvents(ctx context.Context, sessionID string) (<-chan events.Event, error)

	// Close terminates the session's process and retires the
	// identifier. Closing an unknown or already-closed session is a
	// silent no-op.
	Close(sessionID string) error

	// IsAvailable reports whether the backend CLI is installed and a
	// valid credential is resolvable. It spawns no processes.
	IsAvailable() bool
}

// StartConfig carries per-session overrides for StartSession.
type StartConfig struct {
	// Workdir overrides the provider's default working directory.
	Workdir string
}

// StartOption mutates a StartConfig.
type StartOption func(*StartConfig)

// WithWorkdir overrides the working directory for one session.
func WithWorkdir(dir string) StartOption {
	return func(c *StartConfig) {
		c.Workdir = dir
	}
}
