// Package codex provides a high-level SDK for driving the Codex CLI.
//
// The Client wraps a session provider and exposes the legacy
// message-shaped API that downstream agent code consumes: Query starts
// a session, ReceiveResponse streams assistant and user messages
// translated from the underlying event stream. Callers who need the
// raw events use a ports.Provider directly, typically the CLI adapter
// in pkg/codex/adapters/cli.
package codex
