package codex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocodex/codex/pkg/codex"
	"github.com/autocodex/codex/pkg/codex/events"
	"github.com/autocodex/codex/pkg/codex/internal/testutil"
)

func receiveAll(t *testing.T, client *codex.Client) []codex.Message {
	t.Helper()

	ch, err := client.ReceiveResponse(context.Background())
	require.NoError(t, err)

	var got []codex.Message
	for message := range ch {
		got = append(got, message)
	}

	return got
}

func TestClientTranslatesText(t *testing.T) {
	provider := testutil.NewFakeProvider()
	provider.QueueEvent(events.New(events.EventText, map[string]any{
		"content": "hello there",
	}))

	client := codex.NewClientWithProvider(provider)
	require.NoError(t, client.Query(context.Background(), "hi"))

	got := receiveAll(t, client)
	require.Len(t, got, 1)

	assistant, ok := got[0].(codex.AssistantMessage)
	require.True(t, ok, "message type %T", got[0])
	require.Len(t, assistant.Content, 1)

	text, ok := assistant.Content[0].(codex.TextBlock)
	require.True(t, ok)
	assert.Equal(t, "hello there", text.Text)
}

func TestClientTranslatesToolEvents(t *testing.T) {
	provider := testutil.NewFakeProvider()
	provider.QueueEvent(events.New(events.EventToolStart, map[string]any{
		"type":  "tool_use",
		"name":  "grep",
		"input": map[string]any{"pattern": "foo"},
	}))
	provider.QueueEvent(events.New(events.EventToolResult, map[string]any{
		"type":     "tool_result",
		"content":  "3 matches",
		"is_error": false,
	}))

	client := codex.NewClientWithProvider(provider)
	require.NoError(t, client.Query(context.Background(), "search"))

	got := receiveAll(t, client)
	require.Len(t, got, 2)

	assistant, ok := got[0].(codex.AssistantMessage)
	require.True(t, ok)
	toolUse, ok := assistant.Content[0].(codex.ToolUseBlock)
	require.True(t, ok)
	assert.Equal(t, "grep", toolUse.Name)

	user, ok := got[1].(codex.UserMessage)
	require.True(t, ok)
	toolResult, ok := user.Content[0].(codex.ToolResultBlock)
	require.True(t, ok)
	assert.Equal(t, "3 matches", toolResult.Content)
	assert.False(t, toolResult.IsError)
}

func TestClientTranslatesErrors(t *testing.T) {
	provider := testutil.NewFakeProvider()
	provider.QueueEvent(events.New(events.EventError, map[string]any{
		"error": "rate limited",
	}))

	client := codex.NewClientWithProvider(provider)
	require.NoError(t, client.Query(context.Background(), "hi"))

	got := receiveAll(t, client)
	require.Len(t, got, 1)

	assistant, ok := got[0].(codex.AssistantMessage)
	require.True(t, ok)
	text, ok := assistant.Content[0].(codex.TextBlock)
	require.True(t, ok)
	assert.Equal(t, "rate limited", text.Text)
}

func TestClientSkipsEmptyText(t *testing.T) {
	provider := testutil.NewFakeProvider()
	provider.QueueEvent(events.New(events.EventText, map[string]any{
		"content": "",
	}))

	client := codex.NewClientWithProvider(provider)
	require.NoError(t, client.Query(context.Background(), "hi"))

	assert.Empty(t, receiveAll(t, client))
}

func TestClientClosesSessionAfterStream(t *testing.T) {
	provider := testutil.NewFakeProvider()
	client := codex.NewClientWithProvider(provider)

	require.NoError(t, client.Query(context.Background(), "hi"))
	receiveAll(t, client)

	assert.Len(t, provider.ClosedSessions(), 1)

	// The session is gone; a second receive has nothing to stream.
	_, err := client.ReceiveResponse(context.Background())
	assert.Error(t, err)
}

func TestClientRequeryClosesPrevious(t *testing.T) {
	provider := testutil.NewFakeProvider()
	client := codex.NewClientWithProvider(provider)

	require.NoError(t, client.Query(context.Background(), "first"))
	require.NoError(t, client.Query(context.Background(), "second"))

	assert.Equal(t, []string{"first", "second"}, provider.StartedPrompts())
	assert.Len(t, provider.ClosedSessions(), 1)
}

func TestClientReceiveWithoutQuery(t *testing.T) {
	client := codex.NewClientWithProvider(testutil.NewFakeProvider())

	_, err := client.ReceiveResponse(context.Background())
	assert.Error(t, err)
}

func TestClientCloseIdempotent(t *testing.T) {
	provider := testutil.NewFakeProvider()
	client := codex.NewClientWithProvider(provider)

	require.NoError(t, client.Query(context.Background(), "hi"))
	assert.NoError(t, client.Close())
	assert.NoError(t, client.Close())
}

func TestClientAvailability(t *testing.T) {
	provider := testutil.NewFakeProvider()
	client := codex.NewClientWithProvider(provider)
	assert.True(t, client.IsAvailable())

	provider.SetAvailable(false)
	assert.False(t, client.IsAvailable())
}
