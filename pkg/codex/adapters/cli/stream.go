package cli

import (
	"bufio"
	"context"
	"strings"
	"time"

	"github.com/autocodex/codex/pkg/codex/adapters/parse"
	"github.com/autocodex/codex/pkg/codex/events"
	"github.com/autocodex/codex/pkg/codexerrs"
)

// StreamEvents returns the session's event stream. The stream is lazy,
// single-consumer, and not restartable.
//
// The channel always yields exactly one session_start event first and
// one session_end event last, no matter how the process terminates:
// success, non-zero exit, read timeout, or decode failure. Failures
// inside the read loop are folded into error events, never returned as
// Go errors. Cancelling ctx abandons the stream and tears the session
// down without the trailing events.
func (a *Adapter) StreamEvents(
	ctx context.Context,
	sessionID string,
) (<-chan events.Event, error) {
	sess := a.lookup(sessionID)
	if sess == nil {
		return nil, codexerrs.NewSessionNotFoundError(sessionID)
	}

	out := make(chan events.Event, 16)

	go a.pump(ctx, sess, out)

	return out, nil
}

// pump drives one session's read loop and owns its cleanup.
func (a *Adapter) pump(
	ctx context.Context,
	sess *session,
	out chan<- events.Event,
) {
	defer close(out)

	send := func(event events.Event) bool {
		select {
		case out <- event:
			return true
		case <-ctx.Done():
			return false
		}
	}

	abandon := func() {
		a.logger.Debug("stream abandoned", "session_id", sess.id)
		_ = a.Close(sess.id)
	}

	if !send(events.New(events.EventSessionStart, map[string]any{
		"session_id": sess.id,
	})) {
		abandon()

		return
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go a.scanStdout(sess, lines, scanErr)

	// Whatever path ends the pump, drain any pending lines so the
	// scanner goroutine can reach EOF and exit.
	defer func() {
		go func() {
			for range lines {
			}
		}()
	}()

readLoop:
	for {
		var timeout <-chan time.Time

		var timer *time.Timer
		if a.opts.Timeout > 0 {
			timer = time.NewTimer(a.opts.Timeout)
			timeout = timer.C
		}

		select {
		case line, ok := <-lines:
			if timer != nil {
				timer.Stop()
			}

			if !ok {
				// EOF; surface a scanner failure if one occurred.
				select {
				case err := <-scanErr:
					if !send(events.New(events.EventError, map[string]any{
						"error": err.Error(),
					})) {
						abandon()

						return
					}

					// A failed scan means the child may still be
					// alive, blocked writing to a pipe nobody reads
					// anymore. Reap it before waiting on its exit.
					a.terminate(sess.process)
				default:
				}

				break readLoop
			}

			event, ok := parse.Line(strings.TrimSpace(line))
			if !ok {
				continue
			}

			if !send(event) {
				abandon()

				return
			}
		case <-timeout:
			a.logger.Debug("read timeout, terminating process",
				"session_id", sess.id,
				"timeout", a.opts.Timeout,
			)

			if !send(events.New(events.EventError, map[string]any{
				"error": "timeout waiting for output",
			})) {
				abandon()

				return
			}

			// Terminating the process closes its stdout pipe, which
			// unblocks the scanner goroutine.
			a.terminate(sess.process)

			break readLoop
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			abandon()

			return
		}
	}

	exitCode := sess.process.Wait()

	if exitCode != 0 {
		// The drain goroutine finishes once the stderr pipe hits EOF
		// at process exit.
		<-sess.stderrDone

		if !send(events.New(events.EventError, map[string]any{
			"error":      "process exited with error",
			"returncode": exitCode,
			"stderr":     strings.TrimSpace(sess.stderr.String()),
		})) {
			abandon()

			return
		}
	}

	_ = a.Close(sess.id)

	send(events.New(events.EventSessionEnd, map[string]any{
		"session_id": sess.id,
	}))
}

// scanStdout reads stdout line by line into the lines channel. It
// closes lines at EOF and reports a scanner failure through scanErr.
func (a *Adapter) scanStdout(
	sess *session,
	lines chan<- string,
	scanErr chan<- error,
) {
	defer close(lines)

	// The scanner grows toward the larger of the two sizes, so the
	// initial buffer must not exceed the configured cap.
	maxBuf := a.maxBufferSize()
	initial := min(scanBufferSize, maxBuf)

	scanner := bufio.NewScanner(sess.process.Stdout())
	scanner.Buffer(make([]byte, initial), maxBuf)

	for scanner.Scan() {
		lines <- scanner.Text()
	}

	if err := scanner.Err(); err != nil {
		scanErr <- err
	}
}
