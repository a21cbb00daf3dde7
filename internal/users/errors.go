package users

import "errors"

// ErrDuplicate covers both the duplicate pre-check and a commit-time unique
// constraint violation, so both paths report the same message.
var ErrDuplicate = errors.New("username or email already exists")

// ErrNotFound reports a delete against an account that does not exist.
var ErrNotFound = errors.New("account not found")

// ValidationError reports a registration field that is out of policy. The
// message is meant to be shown to the caller as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
