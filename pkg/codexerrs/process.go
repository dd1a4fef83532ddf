package codexerrs

// ProcessError represents failures launching the CLI process. Failures
// of an already-running process are folded into the event stream, so
// this type only ever describes discovery and spawn problems.
type ProcessError struct {
	*BaseError
}

// NewProcessError creates a new process error.
func NewProcessError(
	code ErrorCode,
	message string,
	cause error,
) *ProcessError {
	return &ProcessError{
		BaseError: NewBaseError(CategoryProcess, code, message, cause),
	}
}

// WithCommand adds the attempted command line to the error metadata.
func (e *ProcessError) WithCommand(command string) *ProcessError {
	_ = e.WithMetadata(MetadataKeyCommand, command)

	return e
}

// AuthError represents credential resolution errors.
type AuthError struct {
	*BaseError
	envVar string
}

// NewAuthError creates a new auth error referencing the environment
// variable involved.
func NewAuthError(
	code ErrorCode,
	message string,
	envVar string,
) *AuthError {
	err := &AuthError{
		BaseError: NewBaseError(CategoryAuth, code, message, nil),
		envVar:    envVar,
	}

	_ = err.WithMetadata(MetadataKeyEnvVar, envVar)

	return err
}

// EnvVar returns the environment variable the error refers to.
func (e *AuthError) EnvVar() string {
	return e.envVar
}
