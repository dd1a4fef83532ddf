// Package cli implements the session provider on top of the Codex CLI.
// Each session owns one spawned `codex exec` process; the adapter turns
// the process's line-delimited JSON stdout into a normalized event
// stream and guarantees process cleanup on every termination path.
package cli

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/autocodex/codex/pkg/codex/options"
	"github.com/autocodex/codex/pkg/codex/ports"
)

// Adapter implements ports.Provider using CLI subprocesses. It holds
// the session table, the only shared mutable state; each entry
// exclusively owns its process handle until Close retires it.
type Adapter struct {
	opts     *options.Options
	launcher ports.Launcher
	logger   *slog.Logger
	mu       sync.Mutex
	sessions map[string]*session
}

// Verify interface compliance at compile time.
var _ ports.Provider = (*Adapter)(nil)

const scanBufferSize = 64 * 1024

// NewAdapter creates a CLI adapter that spawns real OS processes.
// A nil opts uses defaults.
func NewAdapter(opts *options.Options) *Adapter {
	return NewAdapterWithLauncher(opts, ExecLauncher{})
}

// NewAdapterWithLauncher creates a CLI adapter with a custom process
// launcher. Tests use this to substitute scripted processes.
func NewAdapterWithLauncher(
	opts *options.Options,
	launcher ports.Launcher,
) *Adapter {
	if opts == nil {
		opts = options.New()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Adapter{
		opts:     opts,
		launcher: launcher,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

func (a *Adapter) lookup(sessionID string) *session {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.sessions[sessionID]
}

func (a *Adapter) gracePeriod() time.Duration {
	if a.opts.GracePeriod > 0 {
		return a.opts.GracePeriod
	}

	return options.DefaultGracePeriod
}

func (a *Adapter) maxBufferSize() int {
	if a.opts.MaxBufferSize != nil && *a.opts.MaxBufferSize > 0 {
		return *a.opts.MaxBufferSize
	}

	return options.DefaultMaxBufferSize
}
