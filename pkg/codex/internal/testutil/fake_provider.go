package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/autocodex/codex/pkg/codex/events"
	"github.com/autocodex/codex/pkg/codex/ports"
	"github.com/autocodex/codex/pkg/codexerrs"
)

// FakeProvider simulates a session backend for testing the client
// facade. It queues content events and wraps them with the
// session_start / session_end envelope on streaming.
type FakeProvider struct {
	mu        sync.Mutex
	queued    []events.Event
	sessions  map[string]bool
	started   []string
	closed    []string
	available bool
	nextID    int
}

// NewFakeProvider creates a fake provider reporting itself available.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		sessions:  make(map[string]bool),
		available: true,
	}
}

// QueueEvent adds a content event to be streamed between the start and
// end envelope events.
func (f *FakeProvider) QueueEvent(event events.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queued = append(f.queued, event)
}

// SetAvailable scripts the IsAvailable result.
func (f *FakeProvider) SetAvailable(available bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.available = available
}

// StartSession records the prompt and returns a generated identifier.
func (f *FakeProvider) StartSession(
	_ context.Context,
	prompt string,
	_ ...ports.StartOption,
) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := fmt.Sprintf("fake-session-%d", f.nextID)
	f.sessions[id] = true
	f.started = append(f.started, prompt)

	return id, nil
}

// Send fails for unknown sessions and otherwise succeeds.
func (f *FakeProvider) Send(_ context.Context, sessionID, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.sessions[sessionID] {
		return codexerrs.NewSessionNotFoundError(sessionID)
	}

	return nil
}

// StreamEvents yields the envelope plus queued content events.
func (f *FakeProvider) StreamEvents(
	_ context.Context,
	sessionID string,
) (<-chan events.Event, error) {
	f.mu.Lock()
	if !f.sessions[sessionID] {
		f.mu.Unlock()

		return nil, codexerrs.NewSessionNotFoundError(sessionID)
	}
	queued := append([]events.Event(nil), f.queued...)
	f.mu.Unlock()

	out := make(chan events.Event, len(queued)+2)
	out <- events.New(events.EventSessionStart, map[string]any{
		"session_id": sessionID,
	})
	for _, event := range queued {
		out <- event
	}
	out <- events.New(events.EventSessionEnd, map[string]any{
		"session_id": sessionID,
	})
	close(out)

	return out, nil
}

// Close retires the session identifier; unknown IDs are a no-op.
func (f *FakeProvider) Close(sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.sessions, sessionID)
	f.closed = append(f.closed, sessionID)

	return nil
}

// IsAvailable returns the scripted availability.
func (f *FakeProvider) IsAvailable() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.available
}

// StartedPrompts returns the prompts passed to StartSession.
func (f *FakeProvider) StartedPrompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.started...)
}

// ClosedSessions returns the identifiers passed to Close.
func (f *FakeProvider) ClosedSessions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.closed...)
}

// Verify interface compliance at compile time.
var _ ports.Provider = (*FakeProvider)(nil)
