package cli

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/autocodex/codex/pkg/codex/ports"
	"github.com/autocodex/codex/pkg/codexerrs"
)

// stderrCaptureLimit caps the stderr capture buffer per session.
const stderrCaptureLimit = 256 * 1024

// session tracks one running CLI process. Stderr is drained into a
// capped buffer from spawn time so the exit-status report always has
// it, regardless of when termination happens.
type session struct {
	id      string
	workdir string
	process ports.Process
	stderr  *cappedBuffer

	// stderrDone closes once the stderr drain goroutine finishes.
	stderrDone chan struct{}

	mu        sync.Mutex
	stdinOpen bool
	closed    bool
}

// StartSession spawns a new codex process seeded with prompt and
// returns its session identifier. The prompt is written to stdin
// followed by a newline, then stdin is closed to signal end of
// request. The session is recorded as open before the call returns.
func (a *Adapter) StartSession(
	ctx context.Context,
	prompt string,
	opts ...ports.StartOption,
) (string, error) {
	cliPath, err := a.findCLI()
	if err != nil {
		return "", err
	}

	cfg := ports.StartConfig{Workdir: a.opts.Workdir}
	for _, opt := range opts {
		opt(&cfg)
	}

	spec := ports.CommandSpec{
		Path:    cliPath,
		Args:    a.BuildArgs(),
		Workdir: cfg.Workdir,
		Env:     a.buildEnvironment(),
	}

	process, err := a.launcher.Launch(ctx, spec)
	if err != nil {
		return "", codexerrs.NewProcessError(
			codexerrs.ErrCodeSpawnFailed,
			"failed to spawn codex CLI",
			err,
		).WithCommand(cliPath + " " + strings.Join(spec.Args, " "))
	}

	sessionID := uuid.NewString()

	sess := &session{
		id:         sessionID,
		workdir:    cfg.Workdir,
		process:    process,
		stderr:     newCappedBuffer(stderrCaptureLimit),
		stderrDone: make(chan struct{}),
	}

	go func() {
		defer close(sess.stderrDone)
		_, _ = io.Copy(sess.stderr, process.Stderr())
	}()

	if stdin := process.Stdin(); stdin != nil {
		sess.stdinOpen = true

		if _, err := io.WriteString(stdin, prompt+"\n"); err != nil {
			a.terminate(process)

			return "", codexerrs.NewTransportError(
				codexerrs.ErrCodeWriteFailed,
				"failed to write prompt",
				err,
			)
		}

		_ = stdin.Close()
		sess.stdinOpen = false
	}

	a.mu.Lock()
	a.sessions[sessionID] = sess
	a.mu.Unlock()

	a.logger.Debug("session started",
		"session_id", sessionID,
		"workdir", cfg.Workdir,
	)

	return sessionID, nil
}

// Send writes a message plus a trailing newline to the session's
// stdin. It fails with a session-not-found error for unknown or
// closed identifiers, and with a stdin-unavailable error once stdin
// has been closed.
func (a *Adapter) Send(
	_ context.Context,
	sessionID, message string,
) error {
	sess := a.lookup(sessionID)
	if sess == nil {
		return codexerrs.NewSessionNotFoundError(sessionID)
	}

	sess.mu.Lock()
	open := sess.stdinOpen && !sess.closed
	sess.mu.Unlock()

	if !open {
		return codexerrs.NewStdinUnavailableError(sessionID)
	}

	stdin := sess.process.Stdin()
	if stdin == nil {
		return codexerrs.NewStdinUnavailableError(sessionID)
	}

	if _, err := io.WriteString(stdin, message+"\n"); err != nil {
		return codexerrs.NewTransportError(
			codexerrs.ErrCodeWriteFailed,
			"failed to write message",
			err,
		)
	}

	return nil
}

// Close terminates the session's process and removes the entry from
// the session table. It is idempotent: closing an unknown or
// already-closed identifier is a silent no-op.
func (a *Adapter) Close(sessionID string) error {
	a.mu.Lock()
	sess := a.sessions[sessionID]
	delete(a.sessions, sessionID)
	a.mu.Unlock()

	if sess == nil {
		return nil
	}

	sess.mu.Lock()
	if sess.closed {
		sess.mu.Unlock()

		return nil
	}
	sess.closed = true
	sess.mu.Unlock()

	a.terminate(sess.process)

	a.logger.Debug("session closed", "session_id", sessionID)

	return nil
}

// terminate applies the two-phase termination policy: graceful signal,
// grace period, then forceful kill with an unconditional wait. Exited
// processes are left alone.
func (a *Adapter) terminate(process ports.Process) {
	if process.Exited() {
		return
	}

	_ = process.Terminate()

	select {
	case <-process.Done():
	case <-time.After(a.gracePeriod()):
		a.logger.Debug("grace period expired, killing process")
		_ = process.Kill()
		<-process.Done()
	}
}

// cappedBuffer is a concurrency-safe write buffer that silently drops
// bytes past its limit.
type cappedBuffer struct {
	mu    sync.Mutex
	buf   strings.Builder
	limit int
}

func newCappedBuffer(limit int) *cappedBuffer {
	return &cappedBuffer{limit: limit}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if remaining := b.limit - b.buf.Len(); remaining > 0 {
		if len(p) > remaining {
			b.buf.Write(p[:remaining])
		} else {
			b.buf.Write(p)
		}
	}

	return len(p), nil
}

func (b *cappedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
