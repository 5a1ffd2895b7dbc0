package walker

import (
	"errors"
	"fmt"
	"strings"
)

// WalkError represents a fatal traversal failure: the search root for a
// pattern is missing, not a directory, or otherwise unusable. Per-directory
// read failures below the root are not WalkErrors; they are recorded on the
// Result and the walk continues.
type WalkError struct {
	Root   string // Search root that failed
	Reason string // Human-readable failure description
	Err    error  // Underlying error (optional)
}

// NewWalkError creates a WalkError for the given search root.
func NewWalkError(root, reason string, err error) *WalkError {
	return &WalkError{
		Root:   root,
		Reason: reason,
		Err:    err,
	}
}

// Error implements the error interface for WalkError.
func (e *WalkError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("search root %q: %s", e.Root, e.Reason))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *WalkError) Unwrap() error {
	return e.Err
}

// IsWalkError checks if the error is or wraps a WalkError.
func IsWalkError(err error) bool {
	if err == nil {
		return false
	}
	var we *WalkError
	return errors.As(err, &we)
}
