package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrNotAdmin covers both an unknown identity and a non-admin role.
	// The two causes stay indistinguishable to callers.
	ErrNotAdmin = errors.New("not an admin or user not found")
	// ErrInvalidCredentials indicates a password mismatch at login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenExpired indicates the access token lifetime has elapsed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid indicates a malformed or badly signed access token.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrForbidden indicates the principal lacks the admin role.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation indicates rejected request input.
	ErrValidation = errors.New("validation failed")
)
