// Package testutil provides scripted fakes for hermetic testing of the
// session adapter, so tests never spawn real OS processes.
package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/autocodex/codex/pkg/codex/ports"
)

// FakeProcess simulates a child process. Stdout is fed through a pipe
// so the adapter's scanner blocks exactly like it would on a real
// process; stderr is a fixed string; the exit code is scripted.
type FakeProcess struct {
	mu          sync.Mutex
	stdin       *recordingWriteCloser
	stdoutR     *io.PipeReader
	stdoutW     *io.PipeWriter
	stderr      io.Reader
	done        chan struct{}
	exitCode    int
	exited      bool
	terminated  bool
	killed      bool
	exitOnTerm  bool
	termExit    int
	stdoutEnded bool
}

// NewFakeProcess creates a fake process whose stdout stays open until
// the test script ends it.
func NewFakeProcess() *FakeProcess {
	r, w := io.Pipe()

	return &FakeProcess{
		stdin:      &recordingWriteCloser{},
		stdoutR:    r,
		stdoutW:    w,
		stderr:     strings.NewReader(""),
		done:       make(chan struct{}),
		exitOnTerm: true,
		termExit:   -1,
	}
}

// SetStderr scripts the stderr content the adapter will capture.
func (p *FakeProcess) SetStderr(content string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stderr = strings.NewReader(content)
}

// WriteStdoutLine emits one line on the fake stdout. It blocks until
// the adapter's scanner consumes it, like a real pipe.
func (p *FakeProcess) WriteStdoutLine(line string) {
	_, _ = io.WriteString(p.stdoutW, line+"\n")
}

// Exit scripts process exit: stdout reports EOF and waiters unblock
// with the given code.
func (p *FakeProcess) Exit(code int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.exited {
		return
	}

	p.exitCode = code
	p.exited = true

	if !p.stdoutEnded {
		p.stdoutEnded = true
		_ = p.stdoutW.Close()
	}

	close(p.done)
}

// Stdin returns the recording stdin writer.
func (p *FakeProcess) Stdin() io.WriteCloser { return p.stdin }

// Stdout returns the scripted stdout stream.
func (p *FakeProcess) Stdout() io.Reader { return p.stdoutR }

// Stderr returns the scripted stderr stream.
func (p *FakeProcess) Stderr() io.Reader {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stderr
}

// Terminate records the graceful signal and, unless configured
// otherwise, exits with the scripted termination code.
func (p *FakeProcess) Terminate() error {
	p.mu.Lock()
	p.terminated = true
	shouldExit := p.exitOnTerm && !p.exited
	code := p.termExit
	p.mu.Unlock()

	if shouldExit {
		p.Exit(code)
	}

	return nil
}

// Kill records the forceful signal and exits immediately.
func (p *FakeProcess) Kill() error {
	p.mu.Lock()
	p.killed = true
	alive := !p.exited
	p.mu.Unlock()

	if alive {
		p.Exit(-1)
	}

	return nil
}

// IgnoreTerminate makes the fake survive Terminate so tests can
// exercise the kill escalation.
func (p *FakeProcess) IgnoreTerminate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.exitOnTerm = false
}

// Done returns a channel closed at exit.
func (p *FakeProcess) Done() <-chan struct{} { return p.done }

// Exited reports whether Exit has been called.
func (p *FakeProcess) Exited() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.exited
}

// Wait blocks until exit and returns the scripted code.
func (p *FakeProcess) Wait() int {
	<-p.done

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.exitCode
}

// Terminated reports whether Terminate was called.
func (p *FakeProcess) Terminated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.terminated
}

// Killed reports whether Kill was called.
func (p *FakeProcess) Killed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.killed
}

// StdinContent returns everything written to stdin so far.
func (p *FakeProcess) StdinContent() string {
	return p.stdin.content()
}

// StdinClosed reports whether stdin was closed.
func (p *FakeProcess) StdinClosed() bool {
	return p.stdin.closed()
}

// Verify interface compliance at compile time.
var _ ports.Process = (*FakeProcess)(nil)

// FakeLauncher hands out scripted processes in order and records the
// command specs it was asked to launch.
type FakeLauncher struct {
	mu        sync.Mutex
	processes []*FakeProcess
	specs     []ports.CommandSpec
	launchErr error
}

// NewFakeLauncher creates a launcher that will return the given
// processes in order.
func NewFakeLauncher(processes ...*FakeProcess) *FakeLauncher {
	return &FakeLauncher{processes: processes}
}

// SimulateError makes Launch fail.
func (l *FakeLauncher) SimulateError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.launchErr = err
}

// Launch returns the next scripted process.
func (l *FakeLauncher) Launch(
	_ context.Context,
	spec ports.CommandSpec,
) (ports.Process, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.launchErr != nil {
		return nil, l.launchErr
	}

	l.specs = append(l.specs, spec)

	if len(l.processes) == 0 {
		return NewFakeProcess(), nil
	}

	p := l.processes[0]
	l.processes = l.processes[1:]

	return p, nil
}

// Specs returns the command specs passed to Launch.
func (l *FakeLauncher) Specs() []ports.CommandSpec {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]ports.CommandSpec(nil), l.specs...)
}

// Verify interface compliance at compile time.
var _ ports.Launcher = (*FakeLauncher)(nil)

// recordingWriteCloser records writes and close calls.
type recordingWriteCloser struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	isClosed bool
}

func (w *recordingWriteCloser) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isClosed {
		return 0, io.ErrClosedPipe
	}

	return w.buf.Write(p)
}

func (w *recordingWriteCloser) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.isClosed = true

	return nil
}

func (w *recordingWriteCloser) content() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.buf.String()
}

func (w *recordingWriteCloser) closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.isClosed
}
