// Package options configures the Codex CLI adapter. It combines domain
// settings (model, sandbox policy) with infrastructure settings (paths,
// timeouts, buffer sizes).
package options

import (
	"log/slog"
	"time"
)

// Default values applied by New.
const (
	// DefaultModel is the Codex model requested when none is set.
	DefaultModel = "gpt-5.2-codex"
	// DefaultTimeout bounds each stdout line read.
	DefaultTimeout = 600 * time.Second
	// DefaultGracePeriod is the wait between graceful and forceful
	// process termination.
	DefaultGracePeriod = 5 * time.Second
	// DefaultMaxBufferSize caps a single stdout line.
	DefaultMaxBufferSize = 1024 * 1024 // 1MB
)

// Options configures the Codex session adapter.
type Options struct {
	// === Domain Settings ===

	// Model selects the Codex model passed via -m.
	Model string

	// BypassSandbox passes --dangerously-bypass-approvals-and-sandbox.
	BypassSandbox bool

	// ExtraArgs appends additional CLI arguments after the standard
	// flags, before the stdin marker.
	ExtraArgs []string

	// === Infrastructure Settings ===

	// Workdir sets the default working directory for spawned
	// processes. Empty means the current directory.
	Workdir string

	// Timeout bounds each stdout line read. Zero or negative disables
	// the read timeout.
	Timeout time.Duration

	// GracePeriod is the wait between SIGTERM and SIGKILL during
	// process termination.
	GracePeriod time.Duration

	// CLIPath overrides PATH discovery of the codex binary (optional).
	CLIPath *string

	// Env sets additional environment variables for the subprocess,
	// on top of the credential passthrough list.
	Env map[string]string

	// MaxBufferSize caps a single stdout line (optional).
	MaxBufferSize *int

	// Logger receives debug-level lifecycle logs. Nil disables
	// logging.
	Logger *slog.Logger
}

// New returns Options populated with defaults. The zero value is also
// usable; the adapter falls back to the same defaults for unset fields.
func New() *Options {
	return &Options{
		Model:         DefaultModel,
		BypassSandbox: true,
		Timeout:       DefaultTimeout,
		GracePeriod:   DefaultGracePeriod,
	}
}
