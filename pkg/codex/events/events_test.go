package events_test

import (
	"testing"

	"github.com/autocodex/codex/pkg/codex/events"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{
			name: "text key wins",
			data: map[string]any{"text": "a", "content": "b", "raw": "c"},
			want: "a",
		},
		{
			name: "content fallback",
			data: map[string]any{"content": "b", "raw": "c"},
			want: "b",
		},
		{
			name: "raw fallback",
			data: map[string]any{"raw": "c"},
			want: "c",
		},
		{
			name: "non-string values skipped",
			data: map[string]any{"text": 42, "content": "b"},
			want: "b",
		},
		{
			name: "nothing usable",
			data: map[string]any{"other": "x"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := events.New(events.EventText, tt.data)
			if got := event.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSessionID(t *testing.T) {
	event := events.New(events.EventSessionStart, map[string]any{
		"session_id": "abc-123",
	})
	if got := event.SessionID(); got != "abc-123" {
		t.Errorf("SessionID() = %q, want abc-123", got)
	}

	empty := events.New(events.EventText, map[string]any{"content": "x"})
	if got := empty.SessionID(); got != "" {
		t.Errorf("SessionID() = %q, want empty", got)
	}
}
