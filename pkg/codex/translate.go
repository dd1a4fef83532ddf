package codex

import (
	"fmt"

	"github.com/autocodex/codex/pkg/codex/events"
	"github.com/autocodex/codex/pkg/codex/messages"
)

// Public type aliases for convenience.
type (
	Message          = messages.Message
	AssistantMessage = messages.AssistantMessage
	UserMessage      = messages.UserMessage
	ContentBlock     = messages.ContentBlock
	TextBlock        = messages.TextBlock
	ToolUseBlock     = messages.ToolUseBlock
	ToolResultBlock  = messages.ToolResultBlock
)

// eventToMessage translates one stream event into a legacy message.
// Envelope events and empty text produce no message.
func eventToMessage(event events.Event) (Message, bool) {
	switch event.Type {
	case events.EventText:
		text := event.Text()
		if text == "" {
			return nil, false
		}

		return AssistantMessage{
			Content: []ContentBlock{TextBlock{Text: text}},
		}, true
	case events.EventToolStart:
		name, _ := event.Data["name"].(string)
		if name == "" {
			name, _ = event.Data["tool"].(string)
		}
		if name == "" {
			name = "tool"
		}

		return AssistantMessage{
			Content: []ContentBlock{ToolUseBlock{
				Name:  name,
				Input: event.Data["input"],
			}},
		}, true
	case events.EventToolResult:
		isError, _ := event.Data["is_error"].(bool)

		return UserMessage{
			Content: []ContentBlock{ToolResultBlock{
				Content: event.Data["content"],
				IsError: isError,
			}},
		}, true
	case events.EventError:
		errorText := "Unknown error"
		if value, ok := event.Data["error"]; ok && value != nil {
			errorText = fmt.Sprintf("%v", value)
		}

		return AssistantMessage{
			Content: []ContentBlock{TextBlock{Text: errorText}},
		}, true
	default:
		return nil, false
	}
}
