// Package parse turns raw Codex CLI output lines into typed events.
//
// The CLI emits newline-delimited JSON objects carrying an optional
// "type" discriminator. Anything that fails to decode is surfaced as
// plain text rather than an error: the CLI interleaves diagnostic text
// with protocol output and callers still want to see it.
package parse

import (
	"encoding/json"

	"github.com/autocodex/codex/pkg/codex/events"
)

// Line maps one stdout line to an event. The second return is false
// for blank lines, which produce no event.
func Line(line string) (events.Event, bool) {
	if line == "" {
		return events.Event{}, false
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		return events.New(events.EventText, map[string]any{
			"content": line,
		}), true
	}

	eventType, _ := data["type"].(string)

	switch eventType {
	case "message":
		content, _ := data["content"].(string)

		return events.New(events.EventText, map[string]any{
			"content": content,
		}), true
	case "tool_use":
		return events.New(events.EventToolStart, data), true
	case "tool_result":
		return events.New(events.EventToolResult, data), true
	case "error":
		return events.New(events.EventError, data), true
	default:
		// JSON-shaped but unrecognized: preserve the raw line so
		// nothing is silently dropped.
		return events.New(events.EventText, map[string]any{
			"raw": line,
		}), true
	}
}
