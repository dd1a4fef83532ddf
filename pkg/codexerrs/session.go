package codexerrs

// SessionError represents session-table errors.
type SessionError struct {
	*BaseError
	sessionID string
}

// NewSessionError creates a new session error.
func NewSessionError(
	code ErrorCode,
	message string,
	sessionID string,
) *SessionError {
	err := &SessionError{
		BaseError: NewBaseError(CategorySession, code, message, nil),
		sessionID: sessionID,
	}

	_ = err.WithMetadata(MetadataKeySessionID, sessionID)

	return err
}

// SessionID returns the session identifier the error refers to.
func (e *SessionError) SessionID() string {
	return e.sessionID
}

// NewSessionNotFoundError reports an unknown or already-closed session ID.
func NewSessionNotFoundError(sessionID string) *SessionError {
	return NewSessionError(
		ErrCodeSessionNotFound,
		"session "+sessionID+" not found",
		sessionID,
	)
}

// TransportError represents stdin/stdout I/O errors.
type TransportError struct {
	*BaseError
}

// NewTransportError creates a new transport error.
func NewTransportError(
	code ErrorCode,
	message string,
	cause error,
) *TransportError {
	return &TransportError{
		BaseError: NewBaseError(CategoryTransport, code, message, cause),
	}
}

// NewStdinUnavailableError reports a write to a session whose stdin has
// already been closed.
func NewStdinUnavailableError(sessionID string) *TransportError {
	err := NewTransportError(
		ErrCodeStdinUnavailable,
		"session stdin is not available",
		nil,
	)
	_ = err.WithMetadata(MetadataKeySessionID, sessionID)

	return err
}
