// Package codexerrs provides the error handling framework for the Codex
// session SDK. It defines error categories, codes, and typed wrappers so
// callers can classify failures without string matching.
package codexerrs

// ErrorCategory groups errors by the subsystem that raised them.
type ErrorCategory string

const (
	// CategorySession covers session-table errors (unknown or closed IDs).
	CategorySession ErrorCategory = "session"
	// CategoryProcess covers subprocess lifecycle errors.
	CategoryProcess ErrorCategory = "process"
	// CategoryTransport covers stdin/stdout I/O errors.
	CategoryTransport ErrorCategory = "transport"
	// CategoryAuth covers credential resolution errors.
	CategoryAuth ErrorCategory = "auth"
)

// ErrorCode identifies a specific failure within a category.
type ErrorCode string

// Session error codes.
const (
	ErrCodeSessionNotFound ErrorCode = "session_not_found"
	ErrCodeSessionClosed   ErrorCode = "session_closed"
)

// Process error codes. Failures of a running process (non-zero exit,
// read timeout, malformed output) are folded into the event stream and
// never raised as errors; only pre-launch failures get codes here.
const (
	ErrCodeSpawnFailed ErrorCode = "spawn_failed"
	ErrCodeCLINotFound ErrorCode = "cli_not_found"
)

// Transport error codes.
const (
	ErrCodeStdinUnavailable ErrorCode = "stdin_unavailable"
	ErrCodeWriteFailed      ErrorCode = "write_failed"
)

// Auth error codes.
const (
	ErrCodeMissingAPIKey        ErrorCode = "missing_api_key"
	ErrCodeInvalidAPIKey        ErrorCode = "invalid_api_key"
	ErrCodeDeprecatedCredential ErrorCode = "deprecated_credential"
)

// Metadata keys used across error types.
const (
	MetadataKeySessionID = "session_id"
	MetadataKeyCommand   = "command"
	MetadataKeyEnvVar    = "env_var"
)
