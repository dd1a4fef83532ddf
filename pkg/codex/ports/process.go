package ports

import (
	"context"
	"io"
)

// Process is the subset of a running child process the adapter needs.
// The exec-backed implementation wraps os/exec; tests substitute a
// scripted fake.
type Process interface {
	// Stdin returns the process standard input, or nil once closed.
	Stdin() io.WriteCloser

	// Stdout returns the process standard output stream.
	Stdout() io.Reader

	// Stderr returns the process standard error stream.
	Stderr() io.Reader

	// Terminate sends the graceful termination signal.
	Terminate() error

	// Kill sends the forceful kill signal.
	Kill() error

	// Done returns a channel closed when the process has exited.
	Done() <-chan struct{}

	// Exited reports whether the process has already exited.
	Exited() bool

	// Wait blocks until the process exits and returns its exit code.
	Wait() int
}

// CommandSpec describes a process to launch.
type CommandSpec struct {
	// Path is the resolved executable path.
	Path string
	// Args are the arguments, excluding the executable name.
	Args []string
	// Workdir is the working directory. Empty means inherit.
	Workdir string
	// Env lists additional KEY=VALUE entries appended to the parent
	// environment.
	Env []string
}

// Launcher spawns processes from command specs. It exists so the
// session adapter's streaming and termination logic can be exercised
// without creating OS processes.
type Launcher interface {
	Launch(ctx context.Context, spec CommandSpec) (Process, error)
}
