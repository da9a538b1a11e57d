package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrTokenExpired       = errors.New("token has expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrUnsupportedMedia   = errors.New("image extension not allowed")
	ErrFileNotFound       = errors.New("file not found")
	ErrNotDirectory       = errors.New("not a directory")
	ErrBadMonth           = errors.New("month must be between 1 and 12")
)
