// Package auth resolves the Codex API credential from the environment
// and builds the environment passthrough for spawned CLI processes.
//
// Credential failures are returned synchronously: no session can make
// partial progress without a key, so callers fail fast at construction
// time rather than through the event stream.
package auth

import (
	"os"
	"regexp"

	"github.com/autocodex/codex/pkg/codexerrs"
)

// TokenEnvVar is the recognized credential source.
const TokenEnvVar = "OPENAI_API_KEY"

// DeprecatedEnvVars are legacy credential variables. They are detected
// only to produce a migration error, never used as credentials.
var DeprecatedEnvVars = []string{
	"CLAUDE_CODE_OAUTH_TOKEN",
}

// PassthroughEnvVars is the fixed allow-list of environment variables
// forwarded to spawned CLI processes.
var PassthroughEnvVars = []string{
	"OPENAI_API_KEY",
	"NO_PROXY",
	"DISABLE_TELEMETRY",
	"DISABLE_COST_WARNINGS",
	"API_TIMEOUT_MS",
}

var apiKeyPattern = regexp.MustCompile(`^sk-[A-Za-z0-9-]{20,}$`)

// IsValidAPIKey reports whether token matches the expected OpenAI API
// key format.
func IsValidAPIKey(token string) bool {
	return apiKeyPattern.MatchString(token)
}

// Token returns the resolved credential, or "" and false if no valid
// credential is present.
func Token() (string, bool) {
	token := os.Getenv(TokenEnvVar)
	if token != "" && IsValidAPIKey(token) {
		return token, true
	}

	return "", false
}

// TokenSource returns the name of the environment variable that
// provided the credential, or "" if none resolved.
func TokenSource() string {
	if _, ok := Token(); ok {
		return TokenEnvVar
	}

	return ""
}

// DeprecatedToken returns the value of a legacy credential variable if
// one is set.
func DeprecatedToken() (string, bool) {
	for _, name := range DeprecatedEnvVars {
		if token := os.Getenv(name); token != "" {
			return token, true
		}
	}

	return "", false
}

// RequireToken returns the resolved credential or a classified auth
// error: invalid format, deprecated variable needing migration, or
// missing entirely.
func RequireToken() (string, error) {
	if token, ok := Token(); ok {
		return token, nil
	}

	if raw := os.Getenv(TokenEnvVar); raw != "" {
		return "", codexerrs.NewAuthError(
			codexerrs.ErrCodeInvalidAPIKey,
			"invalid "+TokenEnvVar+" format: expected a key starting with 'sk-'",
			TokenEnvVar,
		)
	}

	if _, ok := DeprecatedToken(); ok {
		return "", codexerrs.NewAuthError(
			codexerrs.ErrCodeDeprecatedCredential,
			"detected CLAUDE_CODE_OAUTH_TOKEN, but Codex requires "+
				TokenEnvVar+": set "+TokenEnvVar+" and remove the legacy variable",
			DeprecatedEnvVars[0],
		)
	}

	return "", codexerrs.NewAuthError(
		codexerrs.ErrCodeMissingAPIKey,
		"no OpenAI API key found: set "+TokenEnvVar+" in your environment",
		TokenEnvVar,
	)
}

// PassthroughEnv collects the non-empty allow-listed environment
// variables to forward to a spawned process.
func PassthroughEnv() map[string]string {
	env := make(map[string]string)
	for _, name := range PassthroughEnvVars {
		if value := os.Getenv(name); value != "" {
			env[name] = value
		}
	}

	return env
}
