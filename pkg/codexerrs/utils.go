package codexerrs

import "errors"

// AsSDKError extracts an SDKError from an error chain.
func AsSDKError(err error) (SDKError, bool) {
	var sdkErr SDKError
	if errors.As(err, &sdkErr) {
		return sdkErr, true
	}

	return nil, false
}

// HasCode reports whether the error chain contains an SDK error with the
// given code.
func HasCode(err error, code ErrorCode) bool {
	sdkErr, ok := AsSDKError(err)

	return ok && sdkErr.Code() == code
}

// IsSessionNotFound reports whether err is an unknown-session error.
func IsSessionNotFound(err error) bool {
	return HasCode(err, ErrCodeSessionNotFound)
}

// IsStdinUnavailable reports whether err indicates the session stdin was
// already closed.
func IsStdinUnavailable(err error) bool {
	return HasCode(err, ErrCodeStdinUnavailable)
}

// IsAuthError reports whether err belongs to the auth category.
func IsAuthError(err error) bool {
	sdkErr, ok := AsSDKError(err)

	return ok && sdkErr.Category() == CategoryAuth
}

// IsMissingAPIKey reports whether err indicates no credential was present.
func IsMissingAPIKey(err error) bool {
	return HasCode(err, ErrCodeMissingAPIKey)
}

// IsInvalidAPIKey reports whether err indicates a malformed credential.
func IsInvalidAPIKey(err error) bool {
	return HasCode(err, ErrCodeInvalidAPIKey)
}

// IsDeprecatedCredential reports whether err indicates a legacy credential
// variable that must be migrated.
func IsDeprecatedCredential(err error) bool {
	return HasCode(err, ErrCodeDeprecatedCredential)
}
