// Package main demonstrates basic usage of the Codex session SDK.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/autocodex/codex/pkg/codex"
	"github.com/autocodex/codex/pkg/codex/options"
)

func main() {
	// Create options with basic configuration
	opts := options.New()
	opts.Model = "gpt-5.2-codex"
	opts.BypassSandbox = false

	client, err := codex.NewClientWithAuth(opts)
	if err != nil {
		log.Fatalf("Credential resolution failed: %v", err)
	}
	defer func() {
		_ = client.Close()
	}()

	if !client.IsAvailable() {
		log.Fatal("codex CLI is not installed or no credential is set")
	}

	ctx := context.Background()

	if err := client.Query(ctx, "What does this repository do?"); err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	msgCh, err := client.ReceiveResponse(ctx)
	if err != nil {
		log.Fatalf("Receive failed: %v", err)
	}

	for msg := range msgCh {
		switch m := msg.(type) {
		case codex.AssistantMessage:
			printAssistantMessage(m)
		case codex.UserMessage:
			printUserMessage(m)
		}
	}
}

func printAssistantMessage(msg codex.AssistantMessage) {
	for _, block := range msg.Content {
		switch b := block.(type) {
		case codex.TextBlock:
			fmt.Println(b.Text)
		case codex.ToolUseBlock:
			fmt.Printf("[Tool Use: %s(%v)]\n", b.Name, b.Input)
		}
	}
}

func printUserMessage(msg codex.UserMessage) {
	for _, block := range msg.Content {
		if b, ok := block.(codex.ToolResultBlock); ok {
			fmt.Printf("[Tool Result: %v]\n", b.Content)
		}
	}
}
