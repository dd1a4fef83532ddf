// Package main demonstrates raw event streaming with the Codex
// session SDK.
//
// This example shows how to:
// - Use the CLI adapter directly instead of the message facade
// - Start a session with a custom working directory
// - Consume the typed event stream in real-time
// - Observe the session_start / session_end envelope and error events
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/autocodex/codex/pkg/codex/adapters/cli"
	"github.com/autocodex/codex/pkg/codex/events"
	"github.com/autocodex/codex/pkg/codex/options"
	"github.com/autocodex/codex/pkg/codex/ports"
)

func main() {
	opts := options.New()
	opts.Timeout = 120 * time.Second
	opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	adapter := cli.NewAdapter(opts)
	if !adapter.IsAvailable() {
		log.Fatal("codex CLI is not installed or no credential is set")
	}

	ctx := context.Background()

	workdir, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to resolve working directory: %v", err)
	}

	sessionID, err := adapter.StartSession(
		ctx,
		"List the files in this directory and summarize them.",
		ports.WithWorkdir(workdir),
	)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	eventCh, err := adapter.StreamEvents(ctx, sessionID)
	if err != nil {
		log.Fatalf("Failed to stream events: %v", err)
	}

	for event := range eventCh {
		switch event.Type {
		case events.EventSessionStart:
			fmt.Printf("--- session %s started ---\n", event.SessionID())
		case events.EventText:
			fmt.Println(event.Text())
		case events.EventToolStart:
			fmt.Printf("[tool: %v]\n", event.Data["name"])
		case events.EventToolResult:
			fmt.Printf("[result: %v]\n", event.Data["content"])
		case events.EventError:
			fmt.Printf("[error: %v]\n", event.Data["error"])
		case events.EventSessionEnd:
			fmt.Printf("--- session %s ended ---\n", event.SessionID())
		}
	}
}
