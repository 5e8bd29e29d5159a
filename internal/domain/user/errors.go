package user

import "errors"

var (
	ErrNotAuthenticated = errors.New("no authenticated user")
	ErrAccessDenied     = errors.New("access denied")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidDirectory = errors.New("invalid user directory")
)
