package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/autocodex/codex/pkg/codex/ports"
)

// ExecLauncher spawns real OS processes for command specs.
type ExecLauncher struct{}

// Verify interface compliance at compile time.
var _ ports.Launcher = ExecLauncher{}

// Launch starts the process with stdin, stdout, and stderr piped and
// the child in its own process group so termination signals reach the
// whole tree.
//
// Pipes are created manually rather than via cmd.StdoutPipe so that
// exec.Cmd.Wait never closes the read ends out from under a reader
// that is still draining buffered output.
func (ExecLauncher) Launch(
	ctx context.Context,
	spec ports.CommandSpec,
) (ports.Process, error) {
	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Stdin = stdinR
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if spec.Workdir != "" {
		cmd.Dir = spec.Workdir
	}

	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}

	if err := cmd.Start(); err != nil {
		_ = stdinR.Close()
		_ = stdinW.Close()
		_ = stdoutR.Close()
		_ = stdoutW.Close()
		_ = stderrR.Close()
		_ = stderrW.Close()

		return nil, fmt.Errorf("start process: %w", err)
	}

	// The child holds its own copies of the pipe ends; releasing ours
	// makes the read sides report EOF once the child exits.
	_ = stdinR.Close()
	_ = stdoutW.Close()
	_ = stderrW.Close()

	p := &execProcess{
		cmd:    cmd,
		stdin:  stdinW,
		stdout: stdoutR,
		stderr: stderrR,
		done:   make(chan struct{}),
	}

	p.pgid, _ = syscall.Getpgid(cmd.Process.Pid)

	go func() {
		err := cmd.Wait()

		p.mu.Lock()
		if cmd.ProcessState != nil {
			p.exitCode = cmd.ProcessState.ExitCode()
		} else if err != nil {
			p.exitCode = -1
		}
		p.mu.Unlock()

		close(p.done)
	}()

	return p, nil
}

// execProcess adapts an exec.Cmd to the ports.Process interface.
type execProcess struct {
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	stdout   io.Reader
	stderr   io.Reader
	pgid     int
	done     chan struct{}
	mu       sync.Mutex
	exitCode int
}

func (p *execProcess) Stdin() io.WriteCloser { return p.stdin }

func (p *execProcess) Stdout() io.Reader { return p.stdout }

func (p *execProcess) Stderr() io.Reader { return p.stderr }

// Terminate signals the process group with SIGTERM.
func (p *execProcess) Terminate() error {
	return p.signal(syscall.SIGTERM)
}

// Kill signals the process group with SIGKILL.
func (p *execProcess) Kill() error {
	return p.signal(syscall.SIGKILL)
}

func (p *execProcess) signal(sig syscall.Signal) error {
	if p.Exited() {
		return nil
	}

	pgid := p.pgid
	if pgid == 0 {
		pgid = p.cmd.Process.Pid
	}

	return syscall.Kill(-pgid, sig)
}

func (p *execProcess) Done() <-chan struct{} {
	return p.done
}

func (p *execProcess) Exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the process exits and returns its exit code.
// Signal-killed processes report -1.
func (p *execProcess) Wait() int {
	<-p.done

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.exitCode
}
