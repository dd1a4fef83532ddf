package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocodex/codex/pkg/codex/auth"
	"github.com/autocodex/codex/pkg/codexerrs"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("CLAUDE_CODE_OAUTH_TOKEN", "")
}

func TestIsValidAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"sk-test-1234567890abcdef1234", true},
		{"sk-proj-1234567890abcdef1234", true},
		{"sk-" + "0123456789abcdef0123", true},
		{"sk_123", false},
		{"not-a-key", false},
		{"sk-short", false},
		{"", false},
		{"sk-has spaces in the middle!", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, auth.IsValidAPIKey(tt.key), "key %q", tt.key)
	}
}

func TestTokenResolves(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890abcdef1234")

	token, ok := auth.Token()
	require.True(t, ok)
	assert.Equal(t, "sk-test-1234567890abcdef1234", token)
	assert.Equal(t, "OPENAI_API_KEY", auth.TokenSource())
}

func TestTokenRejectsMalformed(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "not-a-key")

	_, ok := auth.Token()
	assert.False(t, ok)
	assert.Empty(t, auth.TokenSource())
}

func TestRequireTokenInvalidFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk_123")

	_, err := auth.RequireToken()
	require.Error(t, err)
	assert.True(t, codexerrs.IsInvalidAPIKey(err))
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestRequireTokenDeprecatedCredential(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLAUDE_CODE_OAUTH_TOKEN", "legacy-token")

	deprecated, ok := auth.DeprecatedToken()
	require.True(t, ok)
	assert.Equal(t, "legacy-token", deprecated)

	_, err := auth.RequireToken()
	require.Error(t, err)
	assert.True(t, codexerrs.IsDeprecatedCredential(err))
	assert.Contains(t, err.Error(), "CLAUDE_CODE_OAUTH_TOKEN")
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestRequireTokenMissing(t *testing.T) {
	clearEnv(t)

	_, err := auth.RequireToken()
	require.Error(t, err)
	assert.True(t, codexerrs.IsMissingAPIKey(err))
	assert.True(t, codexerrs.IsAuthError(err))
}

func TestPassthroughEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890abcdef1234")
	t.Setenv("NO_PROXY", "localhost")
	t.Setenv("DISABLE_TELEMETRY", "")

	env := auth.PassthroughEnv()
	assert.Equal(t, "sk-test-1234567890abcdef1234", env["OPENAI_API_KEY"])
	assert.Equal(t, "localhost", env["NO_PROXY"])

	_, present := env["DISABLE_TELEMETRY"]
	assert.False(t, present, "empty variables are not forwarded")
}
