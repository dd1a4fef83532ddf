package cli

import (
	"os/exec"

	"github.com/autocodex/codex/pkg/codexerrs"
)

// findCLI locates the codex binary. A custom path from options wins;
// otherwise the system PATH is searched.
func (a *Adapter) findCLI() (string, error) {
	if a.opts.CLIPath != nil && *a.opts.CLIPath != "" {
		return *a.opts.CLIPath, nil
	}

	path, err := exec.LookPath("codex")
	if err != nil {
		return "", codexerrs.NewProcessError(
			codexerrs.ErrCodeCLINotFound,
			"codex CLI not found in PATH",
			err,
		)
	}

	return path, nil
}
