package rewrite

import (
	"errors"
	"fmt"
)

// Error wraps a parse, walk, or selection failure with the argument that
// caused it. One failing argument aborts the whole rewrite.
type Error struct {
	Arg string // Offending argument exactly as given
	Err error  // Underlying failure
}

// NewError creates an Error tagging the offending argument.
func NewError(arg string, err error) *Error {
	return &Error{Arg: arg, Err: err}
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	return fmt.Sprintf("argument %q: %v", e.Arg, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsRewriteError checks if the error is or wraps a rewrite Error.
func IsRewriteError(err error) bool {
	if err == nil {
		return false
	}
	var re *Error
	return errors.As(err, &re)
}
