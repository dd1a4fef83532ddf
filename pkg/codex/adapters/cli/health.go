package cli

import "github.com/autocodex/codex/pkg/codex/auth"

// IsAvailable reports whether the codex binary can be located and a
// valid credential is resolvable. It spawns no processes.
func (a *Adapter) IsAvailable() bool {
	if _, err := a.findCLI(); err != nil {
		return false
	}

	_, ok := auth.Token()

	return ok
}
