// Package messages defines the legacy message-shaped API surfaced by the
// client facade. Downstream agent code consumes these instead of raw
// events.
package messages

// Message is the discriminated union of message types.
type Message interface {
	message()
}

// AssistantMessage represents output produced by the agent.
type AssistantMessage struct {
	Content []ContentBlock
}

func (AssistantMessage) message() {}

// UserMessage represents input returned to the agent, such as tool
// results.
type UserMessage struct {
	Content []ContentBlock
}

func (UserMessage) message() {}

// ContentBlock is the discriminated union of block types inside a
// message.
type ContentBlock interface {
	contentBlock()
}

// TextBlock is a block of plain text.
type TextBlock struct {
	Text string
}

func (TextBlock) contentBlock() {}

// ToolUseBlock records the agent invoking a tool.
type ToolUseBlock struct {
	Name  string
	Input any
}

func (ToolUseBlock) contentBlock() {}

// ToolResultBlock records the outcome of a tool invocation.
type ToolResultBlock struct {
	Content any
	IsError bool
}

func (ToolResultBlock) contentBlock() {}
