package cli

import (
	"github.com/autocodex/codex/pkg/codex/auth"
	"github.com/autocodex/codex/pkg/codex/options"
)

// BuildArgs constructs the CLI argument list, excluding the executable
// name. Exported for testing purposes.
//
// Argument order is part of the invocation contract: subcommand,
// optional sandbox bypass, model flag, JSON output flag, caller extra
// args, then the "-" marker telling the CLI to read the request from
// standard input.
func (a *Adapter) BuildArgs() []string {
	args := []string{"exec"}

	if a.opts.BypassSandbox {
		args = append(args, "--dangerously-bypass-approvals-and-sandbox")
	}

	args = append(args, "-m", a.model())
	args = append(args, "--json")
	args = append(args, a.opts.ExtraArgs...)
	args = append(args, "-")

	return args
}

func (a *Adapter) model() string {
	if a.opts.Model != "" {
		return a.opts.Model
	}

	return options.DefaultModel
}

// buildEnvironment collects the KEY=VALUE entries appended to the
// parent environment for a spawned process: the credential passthrough
// allow-list plus caller-specified extras.
func (a *Adapter) buildEnvironment() []string {
	var env []string

	for name, value := range auth.PassthroughEnv() {
		env = append(env, name+"="+value)
	}

	for name, value := range a.opts.Env {
		env = append(env, name+"="+value)
	}

	return env
}
