// Package events defines the typed event stream surfaced by a Codex
// session. Each event carries the raw decoded payload from the CLI's
// line-delimited JSON output, normalized under a closed set of types.
package events

import "time"

// EventType tags an event with its protocol meaning.
type EventType string

const (
	// EventSessionStart is always the first event of a stream and
	// carries the session identifier.
	EventSessionStart EventType = "session_start"
	// EventText carries assistant text output, either from a decoded
	// "message" object or from a raw non-JSON line.
	EventText EventType = "text"
	// EventToolStart carries a decoded "tool_use" object.
	EventToolStart EventType = "tool_start"
	// EventToolResult carries a decoded "tool_result" object.
	EventToolResult EventType = "tool_result"
	// EventError carries a decoded "error" object or a synthesized
	// failure payload (timeout, non-zero exit, read failure).
	EventError EventType = "error"
	// EventSessionEnd is always the last event of a stream.
	EventSessionEnd EventType = "session_end"
)

// Event is one unit of output from a session stream.
type Event struct {
	Type      EventType
	Data      map[string]any
	Timestamp time.Time
}

// New creates an event of the given type, stamped with the current time.
func New(eventType EventType, data map[string]any) Event {
	return Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// Text returns the best text representation of the event payload,
// checking the "text", "content", and "raw" keys in order.
func (e Event) Text() string {
	for _, key := range []string{"text", "content", "raw"} {
		if value, ok := e.Data[key]; ok {
			if s, ok := value.(string); ok && s != "" {
				return s
			}
		}
	}

	return ""
}

// SessionID returns the session identifier carried by session_start and
// session_end events, or "" for other event types.
func (e Event) SessionID() string {
	if id, ok := e.Data["session_id"].(string); ok {
		return id
	}

	return ""
}
